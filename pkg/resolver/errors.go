package resolver

import (
	"errors"
	"fmt"

	"github.com/nemtech/nem2-sdk-go/pkg/transaction"
)

var (
	// ErrMissingTransactionIndex is matched by every MissingTransactionIndexError.
	ErrMissingTransactionIndex = errors.New("missing transaction index")
	// ErrUnresolvedAlias is returned in strict mode when a statement has no entry for an alias.
	ErrUnresolvedAlias = errors.New("unresolved alias")
)

// MissingTransactionIndexError is returned when a transaction using aliases has no position in its block.
type MissingTransactionIndexError struct {
	Type transaction.Type
}

func (e *MissingTransactionIndexError) Error() string {
	return fmt.Sprintf("%s: transaction of type %s has no block height or index", ErrMissingTransactionIndex, e.Type)
}

func (e *MissingTransactionIndexError) Is(target error) bool {
	return target == ErrMissingTransactionIndex
}
