package db

import (
	"github.com/cockroachdb/pebble"
)

// Reader reads from a consistent snapshot.
type Reader struct {
	snapshot *pebble.Snapshot
}

func (r *Reader) Get(key []byte) ([]byte, error) {
	return get(r.snapshot, key)
}

func (r *Reader) Iterate(prefix []byte, limit int, reverse bool) ([]KeyValue, error) {
	iter := r.snapshot.NewIter(&pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: upperBound(prefix),
	})
	return iteratePrefix(iter, limit, reverse)
}

func (r *Reader) Close() error {
	return r.snapshot.Close()
}
