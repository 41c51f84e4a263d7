package headerchain

import (
	"errors"
)

var (
	// ErrHeaderDoesNotConnect is returned when a candidate header does not reference the current tip
	ErrHeaderDoesNotConnect = errors.New("Header does not connect to the current tip")
	// ErrCorruptLog is returned when a persisted log contains a truncated or undecodable record
	ErrCorruptLog = errors.New("Log contains a truncated or undecodable record")
)
