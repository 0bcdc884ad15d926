package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/apperrors"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
	portsrepo "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/repositories"
)

// ledgerAccount is one account's state plus its serialization point. The
// per-account mutex is the in-memory equivalent of the row lock the Postgres
// adapter takes: applies on the same account serialize, applies on different
// accounts run in parallel.
type ledgerAccount struct {
	mu      sync.Mutex
	balance int64
	limit   int64
	records []domain.Transaction
}

// MemoryLedgerRepository is an in-memory implementation of the ledger store.
// The account set is fixed after seeding, so the outer map needs no lock.
type MemoryLedgerRepository struct {
	accounts map[int64]*ledgerAccount
	seq      int64
	seqMu    sync.Mutex
}

// NewMemoryLedgerRepository creates a store seeded with the given accounts.
func NewMemoryLedgerRepository(seed []domain.Account) *MemoryLedgerRepository {
	accounts := make(map[int64]*ledgerAccount, len(seed))
	for _, acc := range seed {
		accounts[acc.AccountID] = &ledgerAccount{
			balance: acc.Balance,
			limit:   acc.Limit,
		}
	}
	return &MemoryLedgerRepository{accounts: accounts}
}

// Ensure MemoryLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*MemoryLedgerRepository)(nil)

func (r *MemoryLedgerRepository) nextID() int64 {
	r.seqMu.Lock()
	defer r.seqMu.Unlock()
	r.seq++
	return r.seq
}

// FindAccountByID retrieves an account's balance and limit by its ID.
func (r *MemoryLedgerRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()
	return &domain.Account{
		AccountID: accountID,
		Balance:   acc.balance,
		Limit:     acc.limit,
	}, nil
}

// CompareAndApply checks the overdraft invariant and applies the mutation
// plus the record append while holding the account's mutex. A rejected
// mutation leaves both balance and records untouched.
func (r *MemoryLedgerRepository) CompareAndApply(ctx context.Context, txn domain.Transaction) (*domain.Account, error) {
	acc, ok := r.accounts[txn.AccountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	newBalance := acc.balance + txn.Amount
	if newBalance < -acc.limit {
		return nil, &apperrors.OverdraftError{
			AccountID: txn.AccountID,
			Amount:    txn.Amount,
			Limit:     acc.limit,
		}
	}

	txn.TransactionID = r.nextID()
	txn.CreatedAt = time.Now().UTC()
	acc.balance = newBalance
	acc.records = append(acc.records, txn)

	return &domain.Account{
		AccountID: txn.AccountID,
		Balance:   acc.balance,
		Limit:     acc.limit,
	}, nil
}

// StatementSnapshot copies balance, limit and the most recent records under
// the account's mutex, which makes the pair trivially consistent.
func (r *MemoryLedgerRepository) StatementSnapshot(ctx context.Context, accountID int64, maxRecords int) (*domain.Account, []domain.Transaction, error) {
	if maxRecords <= 0 {
		maxRecords = 10
	}

	acc, ok := r.accounts[accountID]
	if !ok {
		return nil, nil, apperrors.ErrNotFound
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	n := len(acc.records)
	if n > maxRecords {
		n = maxRecords
	}
	// Records are appended oldest-first; the statement wants newest-first.
	records := make([]domain.Transaction, 0, n)
	for i := len(acc.records) - 1; i >= len(acc.records)-n; i-- {
		records = append(records, acc.records[i])
	}

	return &domain.Account{
		AccountID: accountID,
		Balance:   acc.balance,
		Limit:     acc.limit,
	}, records, nil
}
