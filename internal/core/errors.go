package core

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound indicates that the referenced account id does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInsufficientFunds indicates that a withdrawal or purchase exceeds the
	// current balance. This is an expected business outcome, not a defect.
	ErrInsufficientFunds = errors.New("insufficient balance")

	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("empty account name")
	ErrInvalidKind   = errors.New("invalid transaction kind")
)

// StorageError wraps a failed read or write against the persistence layer.
// Any partial write has already been rolled back by the time it surfaces.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err with the operation name, passing nil through.
func NewStorageError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
