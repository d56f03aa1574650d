package db

import (
	"encoding/hex"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
)

type testKV struct {
	Key   []byte
	Value []byte
}

var testData = []testKV{
	{Key: Key(0x01, []byte("alpha")), Value: []byte("1")},
	{Key: Key(0x01, []byte("beta")), Value: []byte("2")},
	{Key: Key(0x01, []byte("gamma")), Value: []byte("3")},
	{Key: Key(0x02, []byte("alpha")), Value: []byte("4")},
}

func randomTempDir() string {
	return path.Join(os.TempDir(), hex.EncodeToString(crypto.RandomBytes(8)))
}

func setup(t *testing.T) *DB {
	dir := randomTempDir()
	t.Cleanup(func() { os.RemoveAll(dir) })
	db, err := NewDB(dir)
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	for _, kv := range testData {
		assert.NoError(t, db.Set(kv.Key, kv.Value))
	}
	return db
}

func TestDBGetSet(t *testing.T) {
	db := setup(t)

	value, err := db.Get(testData[1].Key)
	assert.NoError(t, err)
	assert.Equal(t, testData[1].Value, value)

	_, err = db.Get(Key(0x03, []byte("alpha")))
	assert.ErrorIs(t, err, ErrDataNotFound)

	exist, err := db.Exist(testData[0].Key)
	assert.NoError(t, err)
	assert.True(t, exist)

	assert.NoError(t, db.Del(testData[0].Key))
	exist, err = db.Exist(testData[0].Key)
	assert.NoError(t, err)
	assert.False(t, exist)
}

func TestDBIterate(t *testing.T) {
	db := setup(t)

	kvs, err := db.Iterate([]byte{0x01}, -1, false)
	assert.NoError(t, err)
	assert.Len(t, kvs, 3)
	assert.Equal(t, testData[0].Key, kvs[0].Key())
	assert.Equal(t, testData[2].Value, kvs[2].Value())

	kvs, err = db.Iterate([]byte{0x01}, 2, true)
	assert.NoError(t, err)
	assert.Len(t, kvs, 2)
	assert.Equal(t, testData[2].Key, kvs[0].Key())
	assert.Equal(t, testData[1].Key, kvs[1].Key())

	kvs, err = db.Iterate([]byte{0x05}, -1, false)
	assert.NoError(t, err)
	assert.Len(t, kvs, 0)
}

func TestDBBatchAndReader(t *testing.T) {
	db := setup(t)

	reader := db.NewReader()
	defer reader.Close()

	batch := db.NewBatch()
	assert.NoError(t, batch.Set(Key(0x02, []byte("beta")), []byte("5")))
	assert.NoError(t, batch.Del(testData[3].Key))
	assert.NoError(t, db.Write(batch))

	value, err := db.Get(Key(0x02, []byte("beta")))
	assert.NoError(t, err)
	assert.Equal(t, []byte("5"), value)

	// snapshot taken before the batch
	value, err = reader.Get(testData[3].Key)
	assert.NoError(t, err)
	assert.Equal(t, testData[3].Value, value)
	_, err = reader.Get(Key(0x02, []byte("beta")))
	assert.ErrorIs(t, err, ErrDataNotFound)

	kvs, err := reader.Iterate([]byte{0x02}, -1, false)
	assert.NoError(t, err)
	assert.Len(t, kvs, 1)
}

func TestInMemoryDB(t *testing.T) {
	db, err := NewInMemoryDB()
	assert.NoError(t, err)
	defer db.Close()
	for _, kv := range testData {
		assert.NoError(t, db.Set(kv.Key, kv.Value))
	}

	assert.NoError(t, db.Del(testData[0].Key))

	exist, err := db.Exist(testData[0].Key)
	assert.NoError(t, err)
	assert.False(t, exist)
}

func TestUpperBound(t *testing.T) {
	assert.Equal(t, []byte{0x02}, upperBound([]byte{0x01}))
	assert.Equal(t, []byte{0x02}, upperBound([]byte{0x01, 0xff}))
	assert.Nil(t, upperBound([]byte{0xff, 0xff}))
}
