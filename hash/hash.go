package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

const (
	// Size of the stored hash
	Size = 32
)

// ErrInvalidLength is returned when parsing a string that does not describe exactly Size bytes
var ErrInvalidLength = errors.New("Hash strings must describe exactly 32 bytes")

// Hash is a wrapper around the double SHA-256 consensus digest
type Hash [Size]byte

// New generates the digest for a slice
func New(b []byte) Hash {
	first := sha256.Sum256(b)
	return Hash(sha256.Sum256(first[:]))
}

// String renders the hash in display order, with the byte order reversed
// as is customary for proof-of-work chains
func (h Hash) String() string {
	var r [Size]byte
	for i, b := range h {
		r[Size-1-i] = b
	}
	return hex.EncodeToString(r[:])
}

// Slice converts the fixed length hash to a dynamic slice
func (h Hash) Slice() []byte {
	return h[:]
}

// IsZero reports whether every byte of the hash is zero
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// FromSlice turns a byte slice into a hash
func FromSlice(s []byte) Hash {
	h := Hash{}
	copy(h[:], s)
	return h
}

// FromString parses a display order hex string back into a hash
func FromString(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, err
	}
	if len(b) != Size {
		return Hash{}, ErrInvalidLength
	}
	h := Hash{}
	for i, c := range b {
		h[Size-1-i] = c
	}
	return h, nil
}
