package storage

import (
	"context"
)

const createTransaction = `
INSERT INTO transactions (account_id, type, amount_cents, description)
VALUES (?, ?, ?, ?)
`

type CreateTransactionParams struct {
	AccountID   int64
	Type        string
	AmountCents int64
	Description string
}

// CreateTransaction appends one history row. The created_at column is
// filled by the table default (local time at insertion).
func (q *Queries) CreateTransaction(ctx context.Context, arg CreateTransactionParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, createTransaction,
		arg.AccountID, arg.Type, arg.AmountCents, arg.Description)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const listTransactionsByAccount = `
SELECT id, account_id, type, amount_cents, description, created_at
FROM transactions
WHERE account_id = ?
ORDER BY created_at DESC, id DESC
`

// ListTransactionsByAccount returns all history rows for an account, most
// recent first. Rows sharing a timestamp fall back to insertion order.
func (q *Queries) ListTransactionsByAccount(ctx context.Context, accountID int64) ([]Transaction, error) {
	rows, err := q.db.QueryContext(ctx, listTransactionsByAccount, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.AccountID, &t.Type, &t.AmountCents, &t.Description, &t.CreatedAt); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
