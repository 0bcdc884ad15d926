package domain

import "time"

// Statement is a read-only snapshot of an account: balance and limit as of a
// single consistent point in time, plus the most recent transactions ordered
// newest-first. The balance always reflects every transaction in Records.
type Statement struct {
	Account
	AsOf    time.Time     `json:"asOf"`
	Records []Transaction `json:"records"`
}
