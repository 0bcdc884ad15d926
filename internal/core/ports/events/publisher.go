package events

import (
	"context"
	"time"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
)

// TransactionCompleted is emitted after a transaction has been durably
// committed together with its balance mutation.
type TransactionCompleted struct {
	AccountID   int64                  `json:"account_id"`
	Amount      int64                  `json:"amount"`
	Kind        domain.TransactionKind `json:"kind"`
	Description string                 `json:"description"`
	Balance     int64                  `json:"balance"`
	OccurredAt  time.Time              `json:"occurred_at"`
}

// Publisher delivers committed-transaction events to downstream consumers.
// Publishing is best-effort: a failure never unwinds the committed mutation.
type Publisher interface {
	PublishTransactionCompleted(ctx context.Context, event TransactionCompleted) error
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishTransactionCompleted(ctx context.Context, event TransactionCompleted) error {
	return nil
}
