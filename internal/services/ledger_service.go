package services

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/appleboblin/finance/internal/core"
	"github.com/appleboblin/finance/internal/storage"
)

// LedgerService enforces money-movement policy and keeps the append-only
// transaction log in lockstep with the stored balance. Each operation's
// read-check-write-append sequence runs in a single storage transaction,
// so a failure can never leave the balance and the log diverged.
type LedgerService struct {
	repo *storage.SQLiteRepository
}

func NewLedgerService(repo *storage.SQLiteRepository) *LedgerService {
	return &LedgerService{repo: repo}
}

// Withdraw debits the account when the balance covers the amount. An
// insufficient balance returns core.ErrInsufficientFunds with no mutation
// and no history row.
func (s *LedgerService) Withdraw(ctx context.Context, accountID int64, amount core.Money, description string) error {
	return s.debit(ctx, accountID, amount, description, core.Withdrawal)
}

// Purchase behaves exactly like Withdraw but records the row as a purchase.
// The distinction is domain vocabulary, not behavior.
func (s *LedgerService) Purchase(ctx context.Context, accountID int64, amount core.Money, description string) error {
	return s.debit(ctx, accountID, amount, description, core.Purchase)
}

func (s *LedgerService) debit(ctx context.Context, accountID int64, amount core.Money, description string, kind core.TransactionKind) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	err := s.repo.WithTx(ctx, func(q *storage.Queries) error {
		balanceCents, err := q.GetAccountBalance(ctx, accountID)
		if err != nil {
			return mapTxErr("get balance", err)
		}
		balance := core.Money{Cents: balanceCents}
		if balance.LessThan(amount) {
			return core.ErrInsufficientFunds
		}

		newBalance := balance.Sub(amount)
		if err := q.UpdateAccountBalance(ctx, storage.UpdateAccountBalanceParams{
			BalanceCents: newBalance.Cents,
			ID:           accountID,
		}); err != nil {
			return mapTxErr("update balance", err)
		}

		if _, err := q.CreateTransaction(ctx, storage.CreateTransactionParams{
			AccountID:   accountID,
			Type:        string(kind),
			AmountCents: amount.Cents,
			Description: description,
		}); err != nil {
			return mapTxErr("create transaction", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Debit recorded",
		"account_id", accountID,
		"kind", string(kind),
		"amount_cents", amount.Cents)
	return nil
}

// Deposit credits the account. There is no upper bound; any valid positive
// amount succeeds.
func (s *LedgerService) Deposit(ctx context.Context, accountID int64, amount core.Money, description string) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	err := s.repo.WithTx(ctx, func(q *storage.Queries) error {
		balanceCents, err := q.GetAccountBalance(ctx, accountID)
		if err != nil {
			return mapTxErr("get balance", err)
		}

		newBalance := core.Money{Cents: balanceCents}.Add(amount)
		if err := q.UpdateAccountBalance(ctx, storage.UpdateAccountBalanceParams{
			BalanceCents: newBalance.Cents,
			ID:           accountID,
		}); err != nil {
			return mapTxErr("update balance", err)
		}

		if _, err := q.CreateTransaction(ctx, storage.CreateTransactionParams{
			AccountID:   accountID,
			Type:        string(core.Deposit),
			AmountCents: amount.Cents,
			Description: description,
		}); err != nil {
			return mapTxErr("create transaction", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Deposit recorded",
		"account_id", accountID,
		"amount_cents", amount.Cents)
	return nil
}

// AddTransaction appends a single history row without touching the balance.
// The three movement operations above are the normal path; this is the
// low-level append they share, exposed for completeness.
func (s *LedgerService) AddTransaction(ctx context.Context, accountID int64, kind core.TransactionKind, amount core.Money, description string) error {
	if !kind.Valid() {
		return core.ErrInvalidKind
	}
	if err := amount.Validate(); err != nil {
		return err
	}

	return s.repo.WithTx(ctx, func(q *storage.Queries) error {
		if _, err := q.CreateTransaction(ctx, storage.CreateTransactionParams{
			AccountID:   accountID,
			Type:        string(kind),
			AmountCents: amount.Cents,
			Description: description,
		}); err != nil {
			return mapTxErr("create transaction", err)
		}
		return nil
	})
}

// TransactionHistory returns the account's transactions ordered by
// timestamp descending; the slice is empty when there are none.
func (s *LedgerService) TransactionHistory(ctx context.Context, accountID int64) ([]core.Transaction, error) {
	return s.repo.ListTransactions(ctx, accountID)
}

func mapTxErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return core.ErrAccountNotFound
	}
	return core.NewStorageError(op, err)
}
