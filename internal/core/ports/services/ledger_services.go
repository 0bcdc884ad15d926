package services

import (
	"context"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
)

// LedgerSvc is the transaction engine consumed by the HTTP layer.
type LedgerSvc interface {
	// Apply applies a signed amount to the account and records the
	// transaction atomically, returning the post-mutation balance and limit.
	Apply(ctx context.Context, accountID int64, amount int64, description string) (*domain.Account, error)
}

// StatementSvc assembles read-only account statements.
type StatementSvc interface {
	Statement(ctx context.Context, accountID int64) (*domain.Statement, error)
}

// ServiceContainer groups the services handed to route registration.
type ServiceContainer struct {
	Ledger    LedgerSvc
	Statement StatementSvc
}
