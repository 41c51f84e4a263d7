package headerchain

import (
	"github.com/spvkit/core/header"
)

// MemoryLog is a Log implementation keeping records only in memory. It is
// used in tests and by embedders that handle persistence themselves.
type MemoryLog struct {
	raw []header.Header
}

// Load returns a copy of the records appended so far
func (m *MemoryLog) Load() ([]header.Header, error) {
	headers := make([]header.Header, len(m.raw))
	copy(headers, m.raw)
	return headers, nil
}

// Append stores the record in memory
func (m *MemoryLog) Append(h header.Header) error {
	m.raw = append(m.raw, h)
	return nil
}

// Close is a no-op
func (m *MemoryLog) Close() error {
	return nil
}
