// Package store persists confirmed transactions and block statements.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nemtech/nem2-sdk-go/pkg/collection/bytes"
	"github.com/nemtech/nem2-sdk-go/pkg/db"
	"github.com/nemtech/nem2-sdk-go/pkg/log"
	"github.com/nemtech/nem2-sdk-go/pkg/metrics"
	"github.com/nemtech/nem2-sdk-go/pkg/receipt"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

// Prefix separates the record kinds in the database.
type Prefix uint8

const (
	prefixHashToTransaction Prefix = 1
	prefixHeightToStatement Prefix = 2
	prefixHeightToHash      Prefix = 3

	recordHeaderSize = 12
)

var (
	ErrDataNotFound = db.ErrDataNotFound
)

// Store gives access to confirmed transactions and statements.
type Store struct {
	database *db.DB
	logger   log.Logger
	metrics  *metrics.Store
}

// Open opens the store at path.
func Open(path string, logger log.Logger, m *metrics.Store) (*Store, error) {
	database, err := db.NewDB(path)
	if err != nil {
		return nil, err
	}
	return &Store{
		database: database,
		logger:   logger,
		metrics:  m,
	}, nil
}

// NewInMemory returns a store which keeps data in memory only.
func NewInMemory(logger log.Logger) (*Store, error) {
	database, err := db.NewInMemoryDB()
	if err != nil {
		return nil, err
	}
	return &Store{
		database: database,
		logger:   logger,
	}, nil
}

func (s *Store) Close() error {
	return s.database.Close()
}

// PutTransaction stores a confirmed standalone payload at height and index.
func (s *Store) PutTransaction(ctx context.Context, hash transaction.Hash, height uint64, index uint32, payload []byte) (err error) {
	started := time.Now()
	defer func() { s.metrics.Observe("put_transaction", err, started) }()
	if err := ctx.Err(); err != nil {
		return err
	}
	if height == 0 {
		return fmt.Errorf("transaction %s cannot be stored at height 0", hash)
	}
	if _, err := transaction.Decode(payload); err != nil {
		return err
	}
	record := bytes.Join(bytes.FromUint64(height), bytes.FromUint32(index), payload)
	batch := s.database.NewBatch()
	if err := batch.Set(db.Key(byte(prefixHashToTransaction), hash[:]), record); err != nil {
		return err
	}
	if err := batch.Set(heightIndexKey(height, index), hash[:]); err != nil {
		return err
	}
	if err := s.database.Write(batch); err != nil {
		return err
	}
	s.logger.Debugf("Stored transaction %s at height %d index %d", hash, height, index)
	return nil
}

// TransactionsByHash returns the transactions in the order of hashes with their info attached.
func (s *Store) TransactionsByHash(ctx context.Context, hashes []transaction.Hash) (txs []*transaction.Transaction, err error) {
	started := time.Now()
	defer func() { s.metrics.Observe("transactions_by_hash", err, started) }()
	reader := s.database.NewReader()
	defer reader.Close()
	txs = make([]*transaction.Transaction, len(hashes))
	for i, hash := range hashes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Get(db.Key(byte(prefixHashToTransaction), hash[:]))
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", hash, err)
		}
		tx, err := decodeRecord(hash, record)
		if err != nil {
			return nil, err
		}
		txs[i] = tx
	}
	return txs, nil
}

// TransactionHashesByHeight returns hashes of the transactions confirmed at height ordered by index.
func (s *Store) TransactionHashesByHeight(ctx context.Context, height uint64) ([]transaction.Hash, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	kvs, err := s.database.Iterate(db.Key(byte(prefixHeightToHash), bytes.FromUint64(height)), -1, false)
	if err != nil {
		return nil, err
	}
	hashes := make([]transaction.Hash, len(kvs))
	for i, kv := range kvs {
		copy(hashes[i][:], kv.Value())
	}
	return hashes, nil
}

// PutStatement stores the resolution statement of a block.
func (s *Store) PutStatement(ctx context.Context, statement *receipt.Statement) (err error) {
	started := time.Now()
	defer func() { s.metrics.Observe("put_statement", err, started) }()
	if err := ctx.Err(); err != nil {
		return err
	}
	if statement == nil {
		return errors.New("statement must not be nil")
	}
	return s.database.Set(heightKey(statement.Height), statement.Encode())
}

// BlockStatement returns the statement of the block at height.
// A block without stored statement has an empty one.
func (s *Store) BlockStatement(ctx context.Context, height uint64) (statement *receipt.Statement, err error) {
	started := time.Now()
	defer func() { s.metrics.Observe("block_statement", err, started) }()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.database.Get(heightKey(height))
	if errors.Is(err, db.ErrDataNotFound) {
		return &receipt.Statement{Height: height}, nil
	}
	if err != nil {
		return nil, err
	}
	return receipt.DecodeStatement(data)
}

func decodeRecord(hash transaction.Hash, record []byte) (*transaction.Transaction, error) {
	if len(record) < recordHeaderSize {
		return nil, fmt.Errorf("record of transaction %s is %d bytes", hash, len(record))
	}
	tx, err := transaction.Decode(record[recordHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", hash, err)
	}
	storedHash := hash
	tx.Info = &transaction.TransactionInfo{
		Height: bytes.ToUint64(record[:8]),
		Index:  transaction.Uint32(bytes.ToUint32(record[8:recordHeaderSize])),
		Hash:   &storedHash,
	}
	if aggregate, ok := tx.Body.(*transaction.AggregateBody); ok {
		for i := range aggregate.Transactions {
			aggregate.Transactions[i].Info = &transaction.TransactionInfo{
				Height:         tx.Info.Height,
				Index:          transaction.Uint32(*tx.Info.Index),
				AggregateIndex: transaction.Uint32(uint32(i)),
				AggregateHash:  &storedHash,
			}
		}
	}
	return tx, nil
}

func heightKey(height uint64) []byte {
	return db.Key(byte(prefixHeightToStatement), bytes.FromUint64(height))
}

func heightIndexKey(height uint64, index uint32) []byte {
	return db.Key(byte(prefixHeightToHash), bytes.FromUint64(height), bytes.FromUint32(index))
}
