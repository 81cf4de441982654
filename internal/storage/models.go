package storage

// Account is the account table row.
type Account struct {
	ID           int64
	Name         string
	BalanceCents int64
}

// Transaction is the transactions table row. CreatedAt keeps the raw
// SQLite text timestamp; the repository parses it into time.Time.
type Transaction struct {
	ID          int64
	AccountID   int64
	Type        string
	AmountCents int64
	Description string
	CreatedAt   string
}
