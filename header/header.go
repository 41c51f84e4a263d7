package header

import (
	"encoding/binary"
	"errors"

	"github.com/spvkit/core/hash"
)

const (
	// Size of a serialized header in bytes
	Size = 80
)

// ErrMalformedHeader is returned when a payload cannot be decoded as a header
var ErrMalformedHeader = errors.New("Payload is not a valid serialized header")

// Header is the fixed-structure summary of a block. It links to its
// predecessor by hash and carries a proof-of-work solution.
type Header struct {
	Version    int32
	PrevBlock  hash.Hash
	MerkleRoot hash.Hash
	Timestamp  uint32
	Bits       uint32
	Nonce      uint32
}

// Serialize converts the header to its consensus wire representation:
// all integers little-endian, hashes in internal byte order.
func (h *Header) Serialize() []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))
	copy(buf[4:36], h.PrevBlock[:])
	copy(buf[36:68], h.MerkleRoot[:])
	binary.LittleEndian.PutUint32(buf[68:72], h.Timestamp)
	binary.LittleEndian.PutUint32(buf[72:76], h.Bits)
	binary.LittleEndian.PutUint32(buf[76:80], h.Nonce)
	return buf
}

// Deserialize restores the header from its consensus wire representation
func (h *Header) Deserialize(b []byte) error {
	if len(b) != Size {
		return ErrMalformedHeader
	}
	h.Version = int32(binary.LittleEndian.Uint32(b[0:4]))
	h.PrevBlock = hash.FromSlice(b[4:36])
	h.MerkleRoot = hash.FromSlice(b[36:68])
	h.Timestamp = binary.LittleEndian.Uint32(b[68:72])
	h.Bits = binary.LittleEndian.Uint32(b[72:76])
	h.Nonce = binary.LittleEndian.Uint32(b[76:80])
	return nil
}

// Hash computes the consensus digest of the header
func (h *Header) Hash() hash.Hash {
	return hash.New(h.Serialize())
}
