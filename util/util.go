package util

import (
	"github.com/martinlindhe/bubblebabble"

	"github.com/spvkit/core/hash"
)

// Fingerprint encodes a hash into a pronounceable human readable form
func Fingerprint(h hash.Hash) string {
	dst := make([]byte, bubblebabble.EncodedLen(hash.Size))
	bubblebabble.Encode(dst, h.Slice())
	return string(dst)
}

// ParseFingerprint decodes a pronounceable form back into a hash
func ParseFingerprint(s string) (hash.Hash, error) {
	dst := [hash.Size]byte{}
	_, err := bubblebabble.Decode(dst[:], []byte(s))
	return hash.Hash(dst), err
}
