package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
	portsrepo "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/repositories"
)

// DefaultStatementRecords is how many recent transactions a statement carries
// when no explicit bound is configured.
const DefaultStatementRecords = 10

// StatementService assembles read-only account statements from a consistent
// snapshot of balance, limit and recent records.
type StatementService struct {
	repo       portsrepo.LedgerRepository
	maxRecords int
}

// NewStatementService creates a new StatementService. maxRecords <= 0 falls
// back to DefaultStatementRecords.
func NewStatementService(repo portsrepo.LedgerRepository, maxRecords int) *StatementService {
	if maxRecords <= 0 {
		maxRecords = DefaultStatementRecords
	}
	return &StatementService{
		repo:       repo,
		maxRecords: maxRecords,
	}
}

// Statement returns the account's balance, limit and most recent records
// (newest-first) as of a single point in time. The returned balance always
// reflects every transaction in the record window.
func (s *StatementService) Statement(ctx context.Context, accountID int64) (*domain.Statement, error) {
	account, records, err := s.repo.StatementSnapshot(ctx, accountID, s.maxRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement snapshot for account %d: %w", accountID, err)
	}

	return &domain.Statement{
		Account: *account,
		AsOf:    time.Now().UTC(),
		Records: records,
	}, nil
}
