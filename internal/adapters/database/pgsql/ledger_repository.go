package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/apperrors"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/domain"
	portsrepo "github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/core/ports/repositories"
	"github.com/ryanjorgeac/rinha-de-backend-2024-q1-ufpb/internal/models"
)

const pgCheckViolation = "23514"

type PgxLedgerRepository struct {
	pool *pgxpool.Pool
}

// NewPgxLedgerRepository creates a new repository for account and transaction data.
func NewPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{pool: pool}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepository
var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

func toDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		Balance:   m.Balance,
		Limit:     m.Limit,
	}
}

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Kind:          domain.TransactionKind(m.Kind),
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// FindAccountByID retrieves an account's balance and limit by its ID.
func (r *PgxLedgerRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `
		SELECT account_id, balance, limit_cents
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAcc models.Account
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Balance,
		&modelAcc.Limit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyError(fmt.Errorf("failed to find account %d: %w", accountID, err))
	}

	domainAcc := toDomainAccount(modelAcc)
	return &domainAcc, nil
}

// CompareAndApply performs the atomic read-check-write for one account: it
// locks the account row, validates the overdraft invariant against the
// current balance, and commits the balance update together with the record
// append. Row-level locking is the per-account serialization point; two
// concurrent calls for the same account are fully serialized, calls for
// different accounts do not block each other.
func (r *PgxLedgerRepository) CompareAndApply(ctx context.Context, txn domain.Transaction) (*domain.Account, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, classifyError(fmt.Errorf("failed to begin transaction: %w", err))
	}
	// Rollback is a no-op after a successful commit.
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	lockQuery := `
		SELECT account_id, balance, limit_cents
		FROM accounts
		WHERE account_id = $1
		FOR UPDATE;
	`
	var modelAcc models.Account
	err = tx.QueryRow(ctx, lockQuery, txn.AccountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Balance,
		&modelAcc.Limit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, classifyError(fmt.Errorf("failed to lock account %d: %w", txn.AccountID, err))
	}

	newBalance := modelAcc.Balance + txn.Amount
	if newBalance < -modelAcc.Limit {
		return nil, &apperrors.OverdraftError{
			AccountID: txn.AccountID,
			Amount:    txn.Amount,
			Limit:     modelAcc.Limit,
		}
	}

	updateQuery := `
		UPDATE accounts
		SET balance = $2
		WHERE account_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, txn.AccountID, newBalance); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation {
			// The DB CHECK constraint mirrors the invariant we just
			// validated; reaching it means the account row changed under
			// our lock, which cannot happen. Surface it as a rejection
			// rather than silently committing.
			return nil, &apperrors.OverdraftError{
				AccountID: txn.AccountID,
				Amount:    txn.Amount,
				Limit:     modelAcc.Limit,
			}
		}
		return nil, classifyError(fmt.Errorf("failed to update balance for account %d: %w", txn.AccountID, err))
	}

	// clock_timestamp() is taken while the row lock is held, so created_at
	// order matches commit order per account even across service instances.
	insertQuery := `
		INSERT INTO transactions (account_id, amount, kind, description, created_at)
		VALUES ($1, $2, $3, $4, clock_timestamp());
	`
	if _, err := tx.Exec(ctx, insertQuery, txn.AccountID, txn.Amount, string(txn.Kind), txn.Description); err != nil {
		return nil, classifyError(fmt.Errorf("failed to insert transaction for account %d: %w", txn.AccountID, err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, classifyError(fmt.Errorf("failed to commit transaction for account %d: %w", txn.AccountID, err))
	}

	return &domain.Account{
		AccountID: modelAcc.AccountID,
		Balance:   newBalance,
		Limit:     modelAcc.Limit,
	}, nil
}

// StatementSnapshot reads balance/limit and the maxRecords most recent
// transactions inside one repeatable-read transaction, so both halves of the
// statement reflect the same point in time.
func (r *PgxLedgerRepository) StatementSnapshot(ctx context.Context, accountID int64, maxRecords int) (*domain.Account, []domain.Transaction, error) {
	if maxRecords <= 0 {
		maxRecords = 10
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, nil, classifyError(fmt.Errorf("failed to begin snapshot transaction: %w", err))
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	accountQuery := `
		SELECT account_id, balance, limit_cents
		FROM accounts
		WHERE account_id = $1;
	`
	var modelAcc models.Account
	err = tx.QueryRow(ctx, accountQuery, accountID).Scan(
		&modelAcc.AccountID,
		&modelAcc.Balance,
		&modelAcc.Limit,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.ErrNotFound
		}
		return nil, nil, classifyError(fmt.Errorf("failed to read account %d for statement: %w", accountID, err))
	}

	recordsQuery := `
		SELECT transaction_id, account_id, amount, kind, description, created_at
		FROM transactions
		WHERE account_id = $1
		ORDER BY transaction_id DESC
		LIMIT $2;
	`
	rows, err := tx.Query(ctx, recordsQuery, accountID, maxRecords)
	if err != nil {
		return nil, nil, classifyError(fmt.Errorf("failed to query transactions for account %d: %w", accountID, err))
	}
	defer rows.Close()

	records := []domain.Transaction{}
	for rows.Next() {
		var modelTxn models.Transaction
		if err := rows.Scan(
			&modelTxn.TransactionID,
			&modelTxn.AccountID,
			&modelTxn.Amount,
			&modelTxn.Kind,
			&modelTxn.Description,
			&modelTxn.CreatedAt,
		); err != nil {
			return nil, nil, classifyError(fmt.Errorf("failed to scan transaction row for account %d: %w", accountID, err))
		}
		records = append(records, toDomainTransaction(modelTxn))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, classifyError(fmt.Errorf("error iterating transaction rows for account %d: %w", accountID, err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, classifyError(fmt.Errorf("failed to close snapshot for account %d: %w", accountID, err))
	}

	domainAcc := toDomainAccount(modelAcc)
	return &domainAcc, records, nil
}

// classifyError maps low-level store failures onto the application error
// kinds: acquisition timeouts are transient and retryable, everything else
// that reaches here means the store misbehaved.
func classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s", apperrors.ErrResourceExhausted, err.Error())
	}
	return fmt.Errorf("%w: %s", apperrors.ErrStoreUnavailable, err.Error())
}
