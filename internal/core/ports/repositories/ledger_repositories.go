package repositories

import (
	"context"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
)

// LedgerRepository is the account store: it owns the balance/limit rows, the
// append-only transaction records, and the per-account serialization point.
// It spans both tables because the mutation and the record append must be one
// atomic unit.
type LedgerRepository interface {
	// FindAccountByID is a pure read of the current balance and limit.
	// Returns apperrors.ErrNotFound if the account does not exist.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// CompareAndApply atomically reads the account's balance and limit,
	// checks the overdraft invariant against txn.Amount, and on success
	// updates the balance and appends the record, all within ownership of
	// the account row. No reader may ever observe one effect without the
	// other. Returns the post-mutation account state.
	//
	// Errors: apperrors.ErrNotFound if the account does not exist;
	// *apperrors.OverdraftError if the mutation would breach the limit, in
	// which case no state changes at all.
	CompareAndApply(ctx context.Context, txn domain.Transaction) (*domain.Account, error)

	// StatementSnapshot reads the account's balance/limit together with its
	// maxRecords most recent transactions (newest-first) as one consistent
	// point-in-time view. Returns apperrors.ErrNotFound if the account does
	// not exist.
	StatementSnapshot(ctx context.Context, accountID int64, maxRecords int) (*domain.Account, []domain.Transaction, error)
}
