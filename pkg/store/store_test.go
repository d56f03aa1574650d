package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nemtech/nem2-sdk-go/pkg/crypto"
	"github.com/nemtech/nem2-sdk-go/pkg/log"
	"github.com/nemtech/nem2-sdk-go/pkg/receipt"
	"github.com/nemtech/nem2-sdk-go/pkg/resolver"
	"github.com/nemtech/nem2-sdk-go/pkg/signer"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

var (
	network        = transaction.MijinTest
	generationHash = transaction.Hash{0xAA}
	recipient      = transaction.NewAddress(transaction.PublicKey{9}, network)
)

func newStore(t *testing.T) *Store {
	s, err := NewInMemory(log.NewSilentLogger())
	assert.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func signedTransfer(t *testing.T, mosaics ...transaction.Mosaic) *signer.SignedTransaction {
	tx := transaction.NewTransfer(network, 100, 0, transaction.AddressOf(recipient), mosaics, transaction.NewPlainMessage("hi"))
	signed, err := signer.Sign(tx, crypto.GenerateKeyPair(), generationHash)
	assert.NoError(t, err)
	return signed
}

func TestPutAndGetTransactions(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	first := signedTransfer(t)
	second := signedTransfer(t, transaction.Mosaic{ID: transaction.MosaicIDOf(1), Amount: 5})
	assert.NoError(t, s.PutTransaction(ctx, first.Hash, 10, 1, first.Payload))
	assert.NoError(t, s.PutTransaction(ctx, second.Hash, 10, 0, second.Payload))

	txs, err := s.TransactionsByHash(ctx, []transaction.Hash{first.Hash, second.Hash})
	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, uint64(10), txs[0].Info.Height)
	assert.Equal(t, uint32(1), *txs[0].Info.Index)
	assert.Equal(t, first.Hash, *txs[0].Info.Hash)
	assert.Equal(t, uint32(0), *txs[1].Info.Index)
	assert.Len(t, txs[1].Body.(*transaction.TransferBody).Mosaics, 1)

	hashes, err := s.TransactionHashesByHeight(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, []transaction.Hash{second.Hash, first.Hash}, hashes)

	hashes, err = s.TransactionHashesByHeight(ctx, 11)
	assert.NoError(t, err)
	assert.Len(t, hashes, 0)
}

func TestPutTransactionErrors(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	signed := signedTransfer(t)

	err := s.PutTransaction(ctx, signed.Hash, 0, 0, signed.Payload)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "height 0")

	err = s.PutTransaction(ctx, signed.Hash, 1, 0, signed.Payload[:50])
	assert.ErrorIs(t, err, transaction.ErrMalformedTransaction)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	err = s.PutTransaction(canceled, signed.Hash, 1, 0, signed.Payload)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransactionsByHashMissing(t *testing.T) {
	s := newStore(t)
	_, err := s.TransactionsByHash(context.Background(), []transaction.Hash{{1}})
	assert.ErrorIs(t, err, ErrDataNotFound)
}

func TestAggregateInnerInfo(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	owner := crypto.GenerateKeyPair()
	inner := transaction.NewTransfer(network, 100, 0, transaction.AddressOf(recipient), nil, transaction.NewPlainMessage(""))
	aggregate := transaction.NewAggregateComplete(network, 100, 0, []transaction.Transaction{
		transaction.Embed(inner, owner.PublicKey()),
		transaction.Embed(inner, owner.PublicKey()),
	})
	signed, err := signer.Sign(aggregate, owner, generationHash)
	assert.NoError(t, err)
	assert.NoError(t, s.PutTransaction(ctx, signed.Hash, 3, 2, signed.Payload))

	txs, err := s.TransactionsByHash(ctx, []transaction.Hash{signed.Hash})
	assert.NoError(t, err)
	body := txs[0].Body.(*transaction.AggregateBody)
	for i, tx := range body.Transactions {
		assert.True(t, tx.Info.IsInner())
		assert.Equal(t, uint32(i), *tx.Info.AggregateIndex)
		assert.Equal(t, uint32(2), *tx.Info.Index)
		assert.Equal(t, signed.Hash, *tx.Info.AggregateHash)
	}
}

func TestBlockStatement(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	statement, err := s.BlockStatement(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), statement.Height)
	assert.True(t, statement.Empty())

	alias, err := transaction.NewNamespaceID("cat.currency")
	assert.NoError(t, err)
	stored := &receipt.Statement{
		Height: 5,
		MosaicResolutions: []receipt.MosaicResolutionStatement{
			{
				Height:     5,
				Unresolved: transaction.AliasMosaicID(alias),
				Entries: []receipt.MosaicResolutionEntry{
					{Source: receipt.Source{PrimaryID: 1}, Resolved: 0x0DC67FBE1CAD29E3},
				},
			},
		},
	}
	assert.NoError(t, s.PutStatement(ctx, stored))

	statement, err = s.BlockStatement(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, stored, statement)

	assert.Error(t, s.PutStatement(ctx, nil))
}

func TestResolveFromStore(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alias, err := transaction.NewNamespaceID("cat.currency")
	assert.NoError(t, err)

	signed := signedTransfer(t, transaction.Mosaic{ID: transaction.AliasMosaicID(alias), Amount: 7})
	assert.NoError(t, s.PutTransaction(ctx, signed.Hash, 8, 0, signed.Payload))
	assert.NoError(t, s.PutStatement(ctx, &receipt.Statement{
		Height: 8,
		MosaicResolutions: []receipt.MosaicResolutionStatement{
			{
				Height:     8,
				Unresolved: transaction.AliasMosaicID(alias),
				Entries: []receipt.MosaicResolutionEntry{
					{Source: receipt.Source{PrimaryID: 1}, Resolved: 0x0DC67FBE1CAD29E3},
				},
			},
		},
	}))

	service := resolver.New(s, s, log.NewSilentLogger())
	txs, err := service.ResolveAliases(ctx, []transaction.Hash{signed.Hash})
	assert.NoError(t, err)
	assert.Len(t, txs, 1)
	mosaics := txs[0].Body.(*transaction.TransferBody).Mosaics
	assert.Equal(t, transaction.MosaicIDOf(0x0DC67FBE1CAD29E3), mosaics[0].ID)
	assert.Equal(t, uint64(7), mosaics[0].Amount)
}
