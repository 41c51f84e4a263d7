package headerchain

import (
	"os"
	"testing"

	bolt "github.com/coreos/bbolt"
	"github.com/stretchr/testify/assert"

	"github.com/spvkit/core/header"
	"github.com/spvkit/core/params"
)

func TestBoltLogInit(t *testing.T) {
	disablelog()
	p := tempPath("boltlog-init")
	defer os.Remove(p)

	l, err := NewBoltLog(p)
	assert.NoError(t, err)
	headers, err := l.Load()
	assert.NoError(t, err)
	assert.Len(t, headers, 0)
	_, ok := l.Meta()
	assert.False(t, ok)
	assert.NoError(t, l.Close())
}

func TestBoltLogRoundTrip(t *testing.T) {
	disablelog()
	p := tempPath("boltlog-roundtrip")
	defer os.Remove(p)

	chain := mineChain(3)
	l, err := NewBoltLog(p)
	assert.NoError(t, err)
	_, err = l.Load()
	assert.NoError(t, err)
	for _, h := range chain {
		assert.NoError(t, l.Append(h))
	}
	assert.NoError(t, l.Close())

	l, err = NewBoltLog(p)
	assert.NoError(t, err)
	defer l.Close()
	headers, err := l.Load()
	assert.NoError(t, err)
	assert.Equal(t, chain, headers)

	meta, ok := l.Meta()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), meta.Height)
	assert.Equal(t, chain[2].Hash(), meta.Tip)
}

func TestBoltLogMetaRecalculation(t *testing.T) {
	disablelog()
	p := tempPath("boltlog-meta")
	defer os.Remove(p)

	l, err := NewBoltLog(p)
	assert.NoError(t, err)
	_, err = l.Load()
	assert.NoError(t, err)
	chain := mineChain(2)
	for _, h := range chain {
		assert.NoError(t, l.Append(h))
	}
	assert.NoError(t, l.Close())

	// wipe the snapshot behind the log's back
	db, err := bolt.Open(p, 0600, nil)
	assert.NoError(t, err)
	err = db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucketName).Delete(metaStateKey)
	})
	assert.NoError(t, err)
	assert.NoError(t, db.Close())

	l, err = NewBoltLog(p)
	assert.NoError(t, err)
	defer l.Close()
	_, err = l.Load()
	assert.NoError(t, err)
	meta, ok := l.Meta()
	assert.True(t, ok)
	assert.Equal(t, uint64(2), meta.Height)
	assert.Equal(t, chain[1].Hash(), meta.Tip)
}

func TestBoltLogBackedStore(t *testing.T) {
	disablelog()
	p := tempPath("boltlog-store")
	defer os.Remove(p)

	l, err := NewBoltLog(p)
	assert.NoError(t, err)
	s, err := New(l, params.Regtest, header.CheckProofOfWork)
	assert.NoError(t, err)
	chain := mineChain(4)
	assert.NoError(t, s.Append(chain))
	tip := s.Tip().Hash()
	s.Close()

	l, err = NewBoltLog(p)
	assert.NoError(t, err)
	s, err = New(l, params.Regtest, header.CheckProofOfWork)
	assert.NoError(t, err)
	defer s.Close()
	assert.Equal(t, uint64(4), s.Height())
	assert.Equal(t, tip, s.Tip().Hash())
}
