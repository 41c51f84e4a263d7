package headerchain

import (
	"github.com/spvkit/core/header"
)

// Log is the append-only persistence backend of a HeaderStore. Load replays
// every record in insertion order; Append durably writes a single record.
// Implementations never mutate or delete previously written records.
type Log interface {
	Load() ([]header.Header, error)
	Append(header.Header) error
	Close() error
}
