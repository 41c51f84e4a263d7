package headerchain

import (
	"encoding/binary"

	bolt "github.com/coreos/bbolt"
	log "github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack"

	"github.com/spvkit/core/hash"
	"github.com/spvkit/core/header"
)

var (
	headerBucketName = []byte("headers")
	metaBucketName   = []byte("meta")
	metaStateKey     = []byte("state")
)

// LogMeta is the snapshot stored in the meta bucket so reopening does not
// have to recount the header bucket
type LogMeta struct {
	Height uint64
	Tip    hash.Hash
}

// BoltLog is a Log implementation storing headers in a boltdb
// (github.com/coreos/bbolt). Records are keyed by a big-endian insertion
// index so cursor order equals chain order.
type BoltLog struct {
	Path string
	db   *bolt.DB
	next uint64
}

// NewBoltLog opens the database at path and prepares the buckets
func NewBoltLog(path string) (*BoltLog, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(headerBucketName); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(metaBucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BoltLog{Path: path, db: db}, nil
}

// Load replays all records in insertion order. When the meta snapshot is
// missing it is recalculated from the header bucket and stored.
func (b *BoltLog) Load() ([]header.Header, error) {
	headers := []header.Header{}
	err := b.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(headerBucketName).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			h := header.Header{}
			if err := h.Deserialize(v); err != nil {
				log.WithField("db", b.Path).Error(err)
				return ErrCorruptLog
			}
			headers = append(headers, h)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	b.next = uint64(len(headers))

	err = b.db.Update(func(tx *bolt.Tx) error {
		meta := tx.Bucket(metaBucketName)
		if meta.Get(metaStateKey) != nil {
			return nil
		}
		if len(headers) == 0 {
			return nil
		}
		log.WithField("db", b.Path).Info("No metadata saved, recalculating snapshot")
		return putMeta(meta, LogMeta{
			Height: uint64(len(headers)),
			Tip:    headers[len(headers)-1].Hash(),
		})
	})
	if err != nil {
		return nil, err
	}
	return headers, nil
}

// Append stores the record under the next insertion index and refreshes the
// meta snapshot in the same transaction
func (b *BoltLog) Append(h header.Header) error {
	err := b.db.Update(func(tx *bolt.Tx) error {
		key := make([]byte, 8)
		binary.BigEndian.PutUint64(key, b.next)
		if err := tx.Bucket(headerBucketName).Put(key, h.Serialize()); err != nil {
			return err
		}
		return putMeta(tx.Bucket(metaBucketName), LogMeta{
			Height: b.next + 1,
			Tip:    h.Hash(),
		})
	})
	if err != nil {
		return err
	}
	b.next++
	return nil
}

// Meta returns the stored snapshot, or false when the log is empty
func (b *BoltLog) Meta() (LogMeta, bool) {
	m := LogMeta{}
	found := false
	_ = b.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(metaBucketName).Get(metaStateKey)
		if raw == nil {
			return nil
		}
		if err := msgpack.Unmarshal(raw, &m); err != nil {
			log.WithField("db", b.Path).Error(err)
			return nil
		}
		found = true
		return nil
	})
	return m, found
}

// Close releases the lock on the db
func (b *BoltLog) Close() error {
	return b.db.Close()
}

func putMeta(bkt *bolt.Bucket, m LogMeta) error {
	enc, err := msgpack.Marshal(&m)
	if err != nil {
		return err
	}
	return bkt.Put(metaStateKey, enc)
}
