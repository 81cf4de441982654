package storage

import (
	"context"
	"database/sql"
)

const createAccount = `
INSERT INTO account (name, balance_cents)
VALUES (?, ?)
`

type CreateAccountParams struct {
	Name         string
	BalanceCents int64
}

// CreateAccount inserts a new account row and returns its assigned id.
func (q *Queries) CreateAccount(ctx context.Context, arg CreateAccountParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, createAccount, arg.Name, arg.BalanceCents)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const getAccountBalance = `
SELECT balance_cents FROM account WHERE id = ?
`

func (q *Queries) GetAccountBalance(ctx context.Context, id int64) (int64, error) {
	var balanceCents int64
	err := q.db.QueryRowContext(ctx, getAccountBalance, id).Scan(&balanceCents)
	return balanceCents, err
}

const updateAccountBalance = `
UPDATE account SET balance_cents = ? WHERE id = ?
`

type UpdateAccountBalanceParams struct {
	BalanceCents int64
	ID           int64
}

// UpdateAccountBalance replaces the stored balance wholesale. It returns
// sql.ErrNoRows when the id does not resolve to an existing account.
func (q *Queries) UpdateAccountBalance(ctx context.Context, arg UpdateAccountBalanceParams) error {
	result, err := q.db.ExecContext(ctx, updateAccountBalance, arg.BalanceCents, arg.ID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

const listAccounts = `
SELECT id, name FROM account ORDER BY id
`

type ListAccountsRow struct {
	ID   int64
	Name string
}

func (q *Queries) ListAccounts(ctx context.Context) ([]ListAccountsRow, error) {
	rows, err := q.db.QueryContext(ctx, listAccounts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []ListAccountsRow
	for rows.Next() {
		var a ListAccountsRow
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

const getAccountName = `
SELECT name FROM account WHERE id = ?
`

func (q *Queries) GetAccountName(ctx context.Context, id int64) (string, error) {
	var name string
	err := q.db.QueryRowContext(ctx, getAccountName, id).Scan(&name)
	return name, err
}
