package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/appleboblin/finance/internal/core"
	"github.com/appleboblin/finance/internal/storage"
)

func newTestRepo(t *testing.T) *storage.SQLiteRepository {
	t.Helper()
	repo, err := storage.NewSQLiteRepository(filepath.Join(t.TempDir(), "finance.db"))
	if err != nil {
		t.Fatalf("create test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestAccountService_CreateAndGetBalance(t *testing.T) {
	svc := NewAccountService(newTestRepo(t))
	ctx := context.Background()

	id, err := svc.CreateAccount(ctx, "Alice", core.Money{Cents: 10050})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	balance, err := svc.GetBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Cents != 10050 {
		t.Fatalf("expected balance 10050 cents, got %d", balance.Cents)
	}
}

func TestAccountService_CreateAccount_Validation(t *testing.T) {
	svc := NewAccountService(newTestRepo(t))
	ctx := context.Background()

	if _, err := svc.CreateAccount(ctx, "", core.Money{Cents: 100}); !errors.Is(err, core.ErrEmptyName) {
		t.Fatalf("blank name expected ErrEmptyName, got %v", err)
	}
	if _, err := svc.CreateAccount(ctx, "Alice", core.Money{Cents: -1}); !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("negative initial balance expected ErrInvalidAmount, got %v", err)
	}

	// Zero initial balance is allowed
	if _, err := svc.CreateAccount(ctx, "Alice", core.Money{}); err != nil {
		t.Fatalf("zero initial balance should be accepted: %v", err)
	}
}

func TestAccountService_ListRoundTrip(t *testing.T) {
	svc := NewAccountService(newTestRepo(t))
	ctx := context.Background()

	id, err := svc.CreateAccount(ctx, "Alice", core.Money{Cents: 100})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	accounts, err := svc.ListAccounts(ctx)
	if err != nil {
		t.Fatalf("list accounts: %v", err)
	}

	seen := 0
	for _, a := range accounts {
		if a.ID == id && a.Name == "Alice" {
			seen++
		}
	}
	if seen != 1 {
		t.Fatalf("expected new account exactly once in listing, saw it %d times", seen)
	}
}

func TestAccountService_UpdateBalance(t *testing.T) {
	svc := NewAccountService(newTestRepo(t))
	ctx := context.Background()

	id, err := svc.CreateAccount(ctx, "Alice", core.Money{Cents: 100})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	if err := svc.UpdateBalance(ctx, id, core.Money{Cents: 9999}); err != nil {
		t.Fatalf("update balance: %v", err)
	}
	balance, err := svc.GetBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if balance.Cents != 9999 {
		t.Fatalf("expected 9999 cents, got %d", balance.Cents)
	}

	if err := svc.UpdateBalance(ctx, id+1, core.Money{Cents: 1}); !errors.Is(err, core.ErrAccountNotFound) {
		t.Fatalf("unknown id expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_AccountName(t *testing.T) {
	svc := NewAccountService(newTestRepo(t))
	ctx := context.Background()

	id, err := svc.CreateAccount(ctx, "Savings", core.Money{})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}

	name, err := svc.AccountName(ctx, id)
	if err != nil {
		t.Fatalf("account name: %v", err)
	}
	if name != "Savings" {
		t.Fatalf("expected Savings, got %q", name)
	}

	if _, err := svc.AccountName(ctx, id+1); !errors.Is(err, core.ErrAccountNotFound) {
		t.Fatalf("unknown id expected ErrAccountNotFound, got %v", err)
	}
}
