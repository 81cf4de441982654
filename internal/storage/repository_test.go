package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/appleboblin/finance/internal/core"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "finance.db"))
	if err != nil {
		t.Fatalf("create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestRepository_CreateAccountAndGetBalance(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.CreateAccount(ctx, "Alice", core.Money{Cents: 10000})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a non-zero account id")
	}

	balance, err := repo.GetBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Cents != 10000 {
		t.Fatalf("expected balance 10000 cents, got %d", balance.Cents)
	}
}

func TestRepository_FreshIDs(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, err := repo.CreateAccount(ctx, "one", core.Money{})
	if err != nil {
		t.Fatalf("create first account: %v", err)
	}
	second, err := repo.CreateAccount(ctx, "two", core.Money{})
	if err != nil {
		t.Fatalf("create second account: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, both were %d", first)
	}
}

func TestRepository_GetBalance_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetBalance(context.Background(), 42)
	if !errors.Is(err, core.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestRepository_UpdateBalance(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.CreateAccount(ctx, "Alice", core.Money{Cents: 5000})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	if err := repo.UpdateBalance(ctx, id, core.Money{Cents: 7500}); err != nil {
		t.Fatalf("update balance: %v", err)
	}

	balance, err := repo.GetBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Cents != 7500 {
		t.Fatalf("expected 7500 cents after update, got %d", balance.Cents)
	}

	// Name must be untouched by a balance update
	name, err := repo.GetAccountName(ctx, id)
	if err != nil {
		t.Fatalf("get account name: %v", err)
	}
	if name != "Alice" {
		t.Fatalf("expected name Alice, got %q", name)
	}
}

func TestRepository_UpdateBalance_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.UpdateBalance(context.Background(), 42, core.Money{Cents: 100})
	if !errors.Is(err, core.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestRepository_ListAccounts(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	accounts, err := repo.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(accounts) != 0 {
		t.Fatalf("expected empty list, got %d accounts", len(accounts))
	}

	id, err := repo.CreateAccount(ctx, "Alice", core.Money{Cents: 100})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	accounts, err = repo.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account, got %d", len(accounts))
	}
	if accounts[0].ID != id || accounts[0].Name != "Alice" {
		t.Fatalf("unexpected listing: %+v", accounts[0])
	}
}

func TestRepository_GetAccountName_NotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.GetAccountName(context.Background(), 99)
	if !errors.Is(err, core.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestRepository_WithTx_RollsBackOnError(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.CreateAccount(ctx, "Alice", core.Money{Cents: 10000})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	boom := errors.New("boom")
	err = repo.WithTx(ctx, func(q *Queries) error {
		if err := q.UpdateAccountBalance(ctx, UpdateAccountBalanceParams{BalanceCents: 1, ID: id}); err != nil {
			return err
		}
		if _, err := q.CreateTransaction(ctx, CreateTransactionParams{
			AccountID: id, Type: "withdrawal", AmountCents: 9999,
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error to surface, got %v", err)
	}

	balance, err := repo.GetBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Cents != 10000 {
		t.Fatalf("balance update should have rolled back, got %d cents", balance.Cents)
	}

	transactions, err := repo.ListTransactions(ctx, id)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(transactions) != 0 {
		t.Fatalf("transaction insert should have rolled back, got %d rows", len(transactions))
	}
}

func TestRepository_WithTx_CommitsOnNil(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	id, err := repo.CreateAccount(ctx, "Alice", core.Money{Cents: 10000})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	err = repo.WithTx(ctx, func(q *Queries) error {
		return q.UpdateAccountBalance(ctx, UpdateAccountBalanceParams{BalanceCents: 2500, ID: id})
	})
	if err != nil {
		t.Fatalf("with tx: %v", err)
	}

	balance, err := repo.GetBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Cents != 2500 {
		t.Fatalf("expected committed balance 2500, got %d", balance.Cents)
	}
}
