package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrOverdraftExceeded indicates that a mutation would drive an account
// balance below its overdraft limit. It is an expected business outcome,
// not a server fault.
var ErrOverdraftExceeded = errors.New("overdraft limit exceeded")

// ErrResourceExhausted indicates a transient capacity problem, e.g. a timeout
// while acquiring a connection from the pool. Callers may retry with backoff.
var ErrResourceExhausted = errors.New("resource exhausted")

// ErrStoreUnavailable indicates the backing store could not be reached or
// failed mid-operation. Fatal for the current request.
var ErrStoreUnavailable = errors.New("store unavailable")

// OverdraftError carries the details of a rejected mutation: the amount that
// was attempted and the limit that would have been breached.
type OverdraftError struct {
	AccountID int64
	Amount    int64
	Limit     int64
}

func (e *OverdraftError) Error() string {
	return fmt.Sprintf("overdraft limit exceeded for account %d: amount %d against limit %d", e.AccountID, e.Amount, e.Limit)
}

// Unwrap makes errors.Is(err, ErrOverdraftExceeded) work on wrapped values.
func (e *OverdraftError) Unwrap() error {
	return ErrOverdraftExceeded
}
