package domain

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// TransactionKind indicates whether a transaction is a credit or a debit.
// The values match the wire representation.
type TransactionKind string

const (
	Credit TransactionKind = "c"
	Debit  TransactionKind = "d"
)

// MaxDescriptionLen bounds the transaction description (in runes).
const MaxDescriptionLen = 10

// Transaction is a single immutable ledger record for an account.
// Amount is signed: positive increases the balance, negative decreases it.
type Transaction struct {
	TransactionID int64           `json:"transactionID"`
	AccountID     int64           `json:"accountID"`
	Amount        int64           `json:"amount"`
	Kind          TransactionKind `json:"kind"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// KindForAmount derives the kind tag from the sign of a non-zero amount.
func KindForAmount(amount int64) TransactionKind {
	if amount < 0 {
		return Debit
	}
	return Credit
}

// Magnitude returns the absolute value of the transaction amount, which is
// what the wire format carries (the kind tag carries the sign).
func (t Transaction) Magnitude() int64 {
	if t.Amount < 0 {
		return -t.Amount
	}
	return t.Amount
}

// Validate checks the structural rules for a candidate transaction before it
// reaches the store: non-zero amount, kind consistent with the sign, and a
// description of 1..MaxDescriptionLen runes.
func (t Transaction) Validate() error {
	if t.Amount == 0 {
		return fmt.Errorf("transaction amount must be non-zero")
	}
	if t.Kind != Credit && t.Kind != Debit {
		return fmt.Errorf("unknown transaction kind %q", t.Kind)
	}
	if t.Kind != KindForAmount(t.Amount) {
		return fmt.Errorf("transaction kind %q does not match sign of amount %d", t.Kind, t.Amount)
	}
	if n := utf8.RuneCountInString(t.Description); n < 1 || n > MaxDescriptionLen {
		return fmt.Errorf("transaction description must be between 1 and %d characters, got %d", MaxDescriptionLen, n)
	}
	return nil
}
