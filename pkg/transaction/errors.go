package transaction

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTransaction is matched by every MalformedTransactionError.
	ErrMalformedTransaction = errors.New("malformed transaction")
	// ErrUnsupportedTransactionType is matched by every UnsupportedTransactionTypeError.
	ErrUnsupportedTransactionType = errors.New("unsupported transaction type")
)

// MalformedTransactionError is returned when bytes do not form a well formed transaction.
type MalformedTransactionError struct {
	Reason string
	Err    error
}

func newMalformed(err error, format string, args ...interface{}) *MalformedTransactionError {
	return &MalformedTransactionError{
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

func (e *MalformedTransactionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s", ErrMalformedTransaction, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrMalformedTransaction, e.Reason)
}

func (e *MalformedTransactionError) Is(target error) bool {
	return target == ErrMalformedTransaction
}

func (e *MalformedTransactionError) Unwrap() error {
	return e.Err
}

// UnsupportedTransactionTypeError is returned when no codec is registered for a type code.
type UnsupportedTransactionTypeError struct {
	Type Type
}

func (e *UnsupportedTransactionTypeError) Error() string {
	return fmt.Sprintf("%s 0x%04X", ErrUnsupportedTransactionType, uint16(e.Type))
}

func (e *UnsupportedTransactionTypeError) Is(target error) bool {
	return target == ErrUnsupportedTransactionType
}
