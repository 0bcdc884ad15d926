package models

// Account mirrors a row of the accounts table.
type Account struct {
	AccountID int64 `db:"account_id"`
	Balance   int64 `db:"balance"`
	Limit     int64 `db:"limit_cents"`
}
