// Package services holds the ledger's business rules on top of the SQLite
// repository: account management and the money-movement operations.
package services

import (
	"context"
	"log/slog"

	"github.com/appleboblin/finance/internal/core"
	"github.com/appleboblin/finance/internal/storage"
)

// AccountService manages account records. It is the source of truth for
// current balances; movement policy lives in LedgerService.
type AccountService struct {
	repo *storage.SQLiteRepository
}

func NewAccountService(repo *storage.SQLiteRepository) *AccountService {
	return &AccountService{repo: repo}
}

// CreateAccount creates a new account with the given rounded initial
// balance and returns its id. The name must be non-blank; the initial
// balance may be zero but never negative.
func (s *AccountService) CreateAccount(ctx context.Context, name string, initial core.Money) (int64, error) {
	if err := core.ValidateAccountName(name); err != nil {
		return 0, err
	}
	if initial.Cents < 0 {
		return 0, core.ErrInvalidAmount
	}

	id, err := s.repo.CreateAccount(ctx, name, initial)
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Account created",
		"id", id,
		"name", name,
		"balance_cents", initial.Cents)
	return id, nil
}

// GetBalance returns the current balance for an account.
func (s *AccountService) GetBalance(ctx context.Context, accountID int64) (core.Money, error) {
	return s.repo.GetBalance(ctx, accountID)
}

// UpdateBalance replaces an account's balance wholesale. Non-negativity is
// movement policy and belongs to the ledger, so it is not checked here.
func (s *AccountService) UpdateBalance(ctx context.Context, accountID int64, balance core.Money) error {
	return s.repo.UpdateBalance(ctx, accountID, balance)
}

// AccountName resolves an account id to its name.
func (s *AccountService) AccountName(ctx context.Context, accountID int64) (string, error) {
	return s.repo.GetAccountName(ctx, accountID)
}

// ListAccounts returns id/name pairs for all accounts. The slice is empty
// when no accounts exist.
func (s *AccountService) ListAccounts(ctx context.Context) ([]core.Account, error) {
	return s.repo.ListAccounts(ctx)
}
