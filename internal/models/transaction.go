package models

import "time"

// Transaction mirrors a row of the transactions table. Amount is the signed
// value; the kind column is the derived 'c'/'d' tag.
type Transaction struct {
	TransactionID int64     `db:"transaction_id"`
	AccountID     int64     `db:"account_id"`
	Amount        int64     `db:"amount"`
	Kind          string    `db:"kind"`
	Description   string    `db:"description"`
	CreatedAt     time.Time `db:"created_at"`
}
