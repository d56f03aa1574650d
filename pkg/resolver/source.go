package resolver

import (
	"context"

	"github.com/nemtech/nem2-sdk-go/pkg/receipt"
	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

// TransactionSource returns confirmed transactions by hash, in the order of hashes.
type TransactionSource interface {
	TransactionsByHash(ctx context.Context, hashes []transaction.Hash) ([]*transaction.Transaction, error)
}

// StatementSource returns the resolution statements of a block.
type StatementSource interface {
	BlockStatement(ctx context.Context, height uint64) (*receipt.Statement, error)
}
