// Package db implements a pebble backed key-value database with prefix iteration.
package db

import (
	"errors"
	"io"
	"sync"

	"github.com/cockroachdb/pebble"

	"github.com/nemtech/nem2-sdk-go/pkg/collection/bytes"
)

var (
	ErrDataNotFound = errors.New("data was not found")
)

// Key joins a single byte prefix and key parts.
func Key(prefix byte, parts ...[]byte) []byte {
	return bytes.Join(append([][]byte{{prefix}}, parts...)...)
}

func upperBound(b []byte) []byte {
	end := bytes.Copy(b)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil // no upper-bound
}

type KeyValue interface {
	Key() []byte
	Value() []byte
}

type keyValue struct {
	key   []byte
	value []byte
}

func (k *keyValue) Key() []byte   { return k.key }
func (k *keyValue) Value() []byte { return k.value }

type DB struct {
	pebbleDB *pebble.DB
}

// NewDB opens or creates the database at path.
func NewDB(path string) (*DB, error) {
	pebbleDB, err := pebble.Open(path, &pebble.Options{
		ErrorIfExists: false,
	})
	if err != nil {
		return nil, err
	}
	return &DB{
		pebbleDB: pebbleDB,
	}, nil
}

func (db *DB) Close() error {
	return db.pebbleDB.Close()
}

func (db *DB) Get(key []byte) ([]byte, error) {
	return get(db.pebbleDB, key)
}

func (db *DB) Exist(key []byte) (bool, error) {
	_, err := db.Get(key)
	if err != nil && !errors.Is(err, ErrDataNotFound) {
		return false, err
	}
	return err == nil, nil
}

func (db *DB) Set(key, value []byte) error {
	return db.pebbleDB.Set(key, value, pebble.Sync)
}

func (db *DB) Del(key []byte) error {
	return db.pebbleDB.Delete(key, pebble.Sync)
}

// Iterate returns key-values with prefix. limit -1 returns all.
func (db *DB) Iterate(prefix []byte, limit int, reverse bool) ([]KeyValue, error) {
	iter := db.pebbleDB.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upperBound(prefix),
	})
	return iteratePrefix(iter, limit, reverse)
}

func (db *DB) NewBatch() *Batch {
	return &Batch{
		inner: db.pebbleDB.NewBatch(),
		mutex: new(sync.Mutex),
	}
}

// NewReader returns reader on a snapshot of the current state.
func (db *DB) NewReader() *Reader {
	return &Reader{
		snapshot: db.pebbleDB.NewSnapshot(),
	}
}

func (db *DB) Write(batch *Batch) error {
	return db.pebbleDB.Apply(batch.inner, pebble.Sync)
}

type getter interface {
	Get(key []byte) ([]byte, io.Closer, error)
}

func get(source getter, key []byte) ([]byte, error) {
	data, closer, err := source.Get(key)
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, ErrDataNotFound
		}
		return nil, err
	}
	copied := bytes.Copy(data)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return copied, nil
}
