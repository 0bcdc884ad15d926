package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/adapters/database/memory"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/apperrors"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepo(accounts ...domain.Account) *memory.MemoryLedgerRepository {
	return memory.NewMemoryLedgerRepository(accounts)
}

func apply(t *testing.T, repo *memory.MemoryLedgerRepository, accountID, amount int64, desc string) (*domain.Account, error) {
	t.Helper()
	return repo.CompareAndApply(context.Background(), domain.Transaction{
		AccountID:   accountID,
		Amount:      amount,
		Kind:        domain.KindForAmount(amount),
		Description: desc,
	})
}

func TestCompareAndApply_DebitWithinLimit(t *testing.T) {
	repo := newRepo(domain.Account{AccountID: 1, Balance: 0, Limit: 1000})

	acc, err := apply(t, repo, 1, -500, "debit")
	require.NoError(t, err)
	assert.Equal(t, int64(-500), acc.Balance)

	// Second debit would land at -1100, past the limit of 1000.
	_, err = apply(t, repo, 1, -600, "debit")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrOverdraftExceeded)

	var oe *apperrors.OverdraftError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, int64(-600), oe.Amount)
	assert.Equal(t, int64(1000), oe.Limit)

	// The rejection must leave balance and history untouched.
	current, err := repo.FindAccountByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(-500), current.Balance)

	_, records, err := repo.StatementSnapshot(context.Background(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestCompareAndApply_ZeroLimitAccount(t *testing.T) {
	repo := newRepo(domain.Account{AccountID: 1, Balance: 0, Limit: 0})

	acc, err := apply(t, repo, 1, 300, "credit")
	require.NoError(t, err)
	assert.Equal(t, int64(300), acc.Balance)

	acc, err = apply(t, repo, 1, -300, "debit")
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.Balance)

	_, err = apply(t, repo, 1, -1, "debit")
	assert.ErrorIs(t, err, apperrors.ErrOverdraftExceeded)
}

func TestCompareAndApply_UnknownAccount(t *testing.T) {
	repo := newRepo(domain.Account{AccountID: 1, Limit: 1000})

	_, err := apply(t, repo, 42, 100, "credit")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStatementSnapshot_FreshAccount(t *testing.T) {
	repo := newRepo(domain.Account{AccountID: 3, Balance: 0, Limit: 1000000})

	acc, records, err := repo.StatementSnapshot(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), acc.Balance)
	assert.Equal(t, int64(1000000), acc.Limit)
	assert.Empty(t, records)
}

func TestStatementSnapshot_NewestFirstWindow(t *testing.T) {
	repo := newRepo(domain.Account{AccountID: 1, Balance: 0, Limit: 0})

	for i := int64(1); i <= 15; i++ {
		_, err := apply(t, repo, 1, i, "credit")
		require.NoError(t, err)
	}

	acc, records, err := repo.StatementSnapshot(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, records, 10)

	// Newest first: amounts 15 down to 6.
	for i, rec := range records {
		assert.Equal(t, int64(15-i), rec.Amount)
	}
	// Balance reflects all 15 accepted transactions, 1+2+...+15.
	assert.Equal(t, int64(120), acc.Balance)

	// created_at never decreases in append order.
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i-1].CreatedAt.Before(records[i].CreatedAt))
	}
}

func TestCompareAndApply_ConcurrentDebitsSerialize(t *testing.T) {
	// 50 concurrent -100 debits against limit 1000: exactly 10 must land.
	repo := newRepo(domain.Account{AccountID: 1, Balance: 0, Limit: 1000})

	const callers = 50
	var wg sync.WaitGroup
	errs := make(chan error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := apply(t, repo, 1, -100, "debit")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	accepted, rejected := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, apperrors.ErrOverdraftExceeded):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 10, accepted)
	assert.Equal(t, 40, rejected)

	acc, records, err := repo.StatementSnapshot(context.Background(), 1, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(-1000), acc.Balance)
	assert.Len(t, records, 10)
}

func TestCompareAndApply_DifferentAccountsDoNotShareState(t *testing.T) {
	repo := newRepo(
		domain.Account{AccountID: 1, Balance: 0, Limit: 1000},
		domain.Account{AccountID: 2, Balance: 0, Limit: 1000},
	)

	const perAccount = 100
	var wg sync.WaitGroup
	for _, id := range []int64{1, 2} {
		for i := 0; i < perAccount; i++ {
			wg.Add(1)
			go func(accountID int64) {
				defer wg.Done()
				_, err := apply(t, repo, accountID, 1, "credit")
				assert.NoError(t, err)
			}(id)
		}
	}
	wg.Wait()

	for _, id := range []int64{1, 2} {
		acc, err := repo.FindAccountByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, int64(perAccount), acc.Balance)
	}
}

func TestStatementSnapshot_ConsistentUnderConcurrentWrites(t *testing.T) {
	// The snapshot's balance must always equal the sum of all records, even
	// while writers are racing with readers.
	repo := newRepo(domain.Account{AccountID: 1, Balance: 0, Limit: 0})

	const writes = 200
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < writes; i++ {
			_, err := apply(t, repo, 1, 1, "credit")
			assert.NoError(t, err)
		}
	}()

	for {
		acc, records, err := repo.StatementSnapshot(context.Background(), 1, writes)
		require.NoError(t, err)

		var sum int64
		for _, rec := range records {
			sum += rec.Amount
		}
		assert.Equal(t, acc.Balance, sum, "balance must reflect exactly the visible records")

		select {
		case <-done:
			final, _, err := repo.StatementSnapshot(context.Background(), 1, writes)
			require.NoError(t, err)
			assert.Equal(t, int64(writes), final.Balance)
			return
		default:
		}
	}
}
