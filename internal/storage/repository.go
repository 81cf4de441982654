// Package storage persists the ledger in a local SQLite file. It owns the
// single shared connection for the process lifetime and exposes every write
// behind its own transaction boundary.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/appleboblin/finance/internal/core"

	_ "modernc.org/sqlite"
)

// createdAtLayout matches SQLite's datetime('now','localtime') text format.
const createdAtLayout = "2006-01-02 15:04:05"

type SQLiteRepository struct {
	db      *sql.DB
	queries *Queries
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{
		db:      db,
		queries: New(db),
	}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateAccount inserts a new account row and returns the assigned id.
func (r *SQLiteRepository) CreateAccount(ctx context.Context, name string, initial core.Money) (int64, error) {
	id, err := r.queries.CreateAccount(ctx, CreateAccountParams{
		Name:         name,
		BalanceCents: initial.Cents,
	})
	if err != nil {
		return 0, core.NewStorageError("create account", err)
	}

	slog.InfoContext(ctx, "Account saved to SQLite",
		"id", id,
		"name", name,
		"balance_cents", initial.Cents)

	return id, nil
}

// GetBalance returns the stored balance for an account.
func (r *SQLiteRepository) GetBalance(ctx context.Context, accountID int64) (core.Money, error) {
	cents, err := r.queries.GetAccountBalance(ctx, accountID)
	if err != nil {
		return core.Money{}, mapAccountErr("get balance", err)
	}
	return core.Money{Cents: cents}, nil
}

// UpdateBalance replaces an account's balance wholesale. Non-negativity is
// the ledger's policy, not enforced here.
func (r *SQLiteRepository) UpdateBalance(ctx context.Context, accountID int64, balance core.Money) error {
	err := r.queries.UpdateAccountBalance(ctx, UpdateAccountBalanceParams{
		BalanceCents: balance.Cents,
		ID:           accountID,
	})
	if err != nil {
		return mapAccountErr("update balance", err)
	}
	return nil
}

// ListAccounts returns id/name pairs for all accounts in insertion order.
// The slice is empty, not nil-as-error, when no accounts exist.
func (r *SQLiteRepository) ListAccounts(ctx context.Context) ([]core.Account, error) {
	rows, err := r.queries.ListAccounts(ctx)
	if err != nil {
		return nil, core.NewStorageError("list accounts", err)
	}

	accounts := make([]core.Account, len(rows))
	for i, row := range rows {
		accounts[i] = core.Account{ID: row.ID, Name: row.Name}
	}
	return accounts, nil
}

// GetAccountName resolves an account id to its name.
func (r *SQLiteRepository) GetAccountName(ctx context.Context, accountID int64) (string, error) {
	name, err := r.queries.GetAccountName(ctx, accountID)
	if err != nil {
		return "", mapAccountErr("get account name", err)
	}
	return name, nil
}

// ListTransactions returns all history rows for an account, most recent
// first, with timestamps parsed from SQLite's local-time text format.
func (r *SQLiteRepository) ListTransactions(ctx context.Context, accountID int64) ([]core.Transaction, error) {
	rows, err := r.queries.ListTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, core.NewStorageError("list transactions", err)
	}

	transactions := make([]core.Transaction, len(rows))
	for i, row := range rows {
		createdAt, err := time.ParseInLocation(createdAtLayout, row.CreatedAt, time.Local)
		if err != nil {
			return nil, core.NewStorageError("parse transaction timestamp", err)
		}
		transactions[i] = core.Transaction{
			ID:          row.ID,
			AccountID:   row.AccountID,
			Kind:        core.TransactionKind(row.Type),
			Amount:      core.Money{Cents: row.AmountCents},
			Description: row.Description,
			CreatedAt:   createdAt,
		}
	}
	return transactions, nil
}

// WithTx runs fn against transaction-scoped queries. A nil return commits;
// any error rolls back every write made by fn before surfacing.
func (r *SQLiteRepository) WithTx(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return core.NewStorageError("begin transaction", err)
	}

	if err := fn(r.queries.WithTx(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			slog.ErrorContext(ctx, "Rollback failed", "error", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return core.NewStorageError("commit transaction", err)
	}
	return nil
}

// mapAccountErr translates a missing row into the domain not-found error
// and everything else into a storage error.
func mapAccountErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return core.ErrAccountNotFound
	}
	return core.NewStorageError(op, err)
}
