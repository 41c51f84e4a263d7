package header

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spvkit/core/hash"
)

func TestCompactToBig(t *testing.T) {
	// mantissa 0xffff shifted by 26 bytes
	assert.Equal(t, "ffff"+strings.Repeat("0", 52), CompactToBig(0x1d00ffff).Text(16))
	// mantissa 0x7fffff shifted by 29 bytes
	assert.Equal(t, "7fffff"+strings.Repeat("0", 58), CompactToBig(0x207fffff).Text(16))
	assert.Equal(t, 0, CompactToBig(0).Sign())
	// bit 24 of the mantissa flags a negative number
	assert.Equal(t, -1, CompactToBig(0x04800001).Sign())
}

func TestHashToBig(t *testing.T) {
	assert.Equal(t, 0, HashToBig(hash.Hash{}).Sign())
	assert.Equal(t, big.NewInt(1), HashToBig(hash.Hash{1}))
}

func TestCheckProofOfWork(t *testing.T) {
	h := Header{Version: 1, Timestamp: 1, Bits: 0x207fffff}
	for CheckProofOfWork(&h) != nil {
		h.Nonce++
	}
	assert.NoError(t, CheckProofOfWork(&h))

	h.Bits = 0
	assert.Equal(t, ErrInvalidTarget, CheckProofOfWork(&h))

	// target of 1, no realistic hash satisfies it
	h.Bits = 0x03000001
	assert.Equal(t, ErrHashAboveTarget, CheckProofOfWork(&h))
}
