package header

import (
	"errors"
	"math/big"

	"github.com/spvkit/core/hash"
)

var (
	// ErrInvalidTarget is returned when the encoded target is zero or negative
	ErrInvalidTarget = errors.New("Encoded target is not a positive number")
	// ErrHashAboveTarget is returned when the header hash does not satisfy its own target
	ErrHashAboveTarget = errors.New("Header hash is above the encoded target")
)

// CompactToBig expands the compact 32 bit target encoding into a full
// 256 bit number. The top byte is a base-256 exponent, the low 23 bits
// are the mantissa and bit 24 carries the sign.
func CompactToBig(bits uint32) *big.Int {
	mantissa := bits & 0x007fffff
	negative := bits&0x00800000 != 0
	exponent := uint(bits >> 24)

	var n *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		n = big.NewInt(int64(mantissa))
	} else {
		n = big.NewInt(int64(mantissa))
		n.Lsh(n, 8*(exponent-3))
	}
	if negative {
		n.Neg(n)
	}
	return n
}

// HashToBig interprets a hash as the 256 bit number compared against targets.
// The serialized hash is little-endian, so the bytes are reversed first.
func HashToBig(h hash.Hash) *big.Int {
	var r [hash.Size]byte
	for i, b := range h {
		r[hash.Size-1-i] = b
	}
	return new(big.Int).SetBytes(r[:])
}

// Target returns the numeric difficulty threshold the header hash must satisfy
func (h *Header) Target() *big.Int {
	return CompactToBig(h.Bits)
}

// CheckProofOfWork verifies that the header hash satisfies the target the
// header itself declares. It deliberately checks nothing else: difficulty
// retargeting and chain context are the concern of an upstream validator.
func CheckProofOfWork(h *Header) error {
	target := h.Target()
	if target.Sign() <= 0 {
		return ErrInvalidTarget
	}
	if HashToBig(h.Hash()).Cmp(target) > 0 {
		return ErrHashAboveTarget
	}
	return nil
}
