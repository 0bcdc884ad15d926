package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/apperrors"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
	portsevents "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/events"
	portsrepo "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/repositories"
)

// LedgerService is the transaction engine: it validates a candidate
// transaction and delegates the read-check-write to the repository's
// compare-and-apply primitive, which serializes per account.
type LedgerService struct {
	repo      portsrepo.LedgerRepository
	publisher portsevents.Publisher
	logger    *slog.Logger
}

// NewLedgerService creates a new LedgerService. A nil publisher disables
// event publishing.
func NewLedgerService(repo portsrepo.LedgerRepository, publisher portsevents.Publisher, logger *slog.Logger) *LedgerService {
	if publisher == nil {
		publisher = portsevents.NoopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LedgerService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

// Apply applies a signed amount to the account's balance and appends the
// transaction record as one atomic unit. Exactly one of three outcomes
// occurs: the mutation is accepted and the new state returned; the mutation
// would breach the overdraft limit and *apperrors.OverdraftError is returned
// with no state change; or the account does not exist.
func (s *LedgerService) Apply(ctx context.Context, accountID int64, amount int64, description string) (*domain.Account, error) {
	txn := domain.Transaction{
		AccountID:   accountID,
		Amount:      amount,
		Kind:        domain.KindForAmount(amount),
		Description: description,
	}
	if err := txn.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	account, err := s.repo.CompareAndApply(ctx, txn)
	if err != nil {
		return nil, err
	}

	// The mutation is committed; a publish failure must not unwind it.
	event := portsevents.TransactionCompleted{
		AccountID:   account.AccountID,
		Amount:      txn.Amount,
		Kind:        txn.Kind,
		Description: txn.Description,
		Balance:     account.Balance,
		OccurredAt:  time.Now().UTC(),
	}
	if err := s.publisher.PublishTransactionCompleted(ctx, event); err != nil {
		s.logger.Warn("Failed to publish transaction completed event",
			slog.Int64("account_id", account.AccountID),
			slog.String("error", err.Error()))
	}

	return account, nil
}
