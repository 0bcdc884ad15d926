package domain

// Account holds a client's current balance together with its overdraft limit.
// Amounts are signed integers in minor currency units (cents).
//
// The invariant Balance >= -Limit must hold after every committed mutation;
// it is enforced by the ledger engine inside the store's serialization point.
type Account struct {
	AccountID int64 `json:"accountID"`
	Balance   int64 `json:"balance"`
	Limit     int64 `json:"limit"` // non-negative; max magnitude Balance may go below zero
}

// WithinLimit reports whether applying amount to the current balance keeps
// the account inside its overdraft limit.
func (a Account) WithinLimit(amount int64) bool {
	return a.Balance+amount >= -a.Limit
}
