package core

import (
	"strings"
	"time"
)

const (
	Withdrawal TransactionKind = "withdrawal"
	Deposit    TransactionKind = "deposit"
	Purchase   TransactionKind = "purchase"
)

type (
	// TransactionKind is the closed set of money-movement labels.
	TransactionKind string

	// Account is a named balance holder. Balance is eagerly maintained by
	// the ledger, never recomputed from the transaction log.
	Account struct {
		ID      int64
		Name    string
		Balance Money
	}

	// Transaction is one append-only history row. CreatedAt is assigned by
	// the storage layer at insertion time.
	Transaction struct {
		ID          int64
		AccountID   int64
		Kind        TransactionKind
		Amount      Money
		Description string
		CreatedAt   time.Time
	}
)

// Valid reports whether k is one of the known transaction kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case Withdrawal, Deposit, Purchase:
		return true
	}
	return false
}

// ValidateAccountName rejects blank account names.
func ValidateAccountName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	return nil
}
