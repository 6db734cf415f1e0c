package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mecmec98/billingrestapi/internal/apperrors"
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portsrepo "github.com/mecmec98/billingrestapi/internal/core/ports/repositories"
	"github.com/mecmec98/billingrestapi/internal/models"
	"github.com/mecmec98/billingrestapi/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const ledgerColumns = `id, consumer_id, ref_no, reading_date, date_entered, particulars, debit, credit, balance, by_user, status, amount`

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for wb_ledger data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryWithTx
var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

func scanLedgerEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.ID,
		&m.ConsumerID,
		&m.RefNo,
		&m.ReadingDate,
		&m.DateEntered,
		&m.Particulars,
		&m.Debit,
		&m.Credit,
		&m.Balance,
		&m.ByUser,
		&m.Status,
		&m.Amount,
	)
	return m, err
}

// PostTransaction appends a ledger entry with a derived running balance.
// The read of the prior balance and the insert of the new row happen inside
// one database transaction. Postings for the same consumer are serialized by
// locking the consumer row first, which also covers the first-ever posting
// where no ledger row exists to lock; postings for different consumers
// proceed in parallel.
func (r *PgxLedgerRepository) PostTransaction(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM consumers WHERE id = $1 FOR UPDATE;`, entry.ConsumerID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("consumer %d not found", entry.ConsumerID))
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to lock consumer %d for posting", entry.ConsumerID), err)
	}

	priorBalance := decimal.Zero
	err = tx.QueryRow(ctx,
		`SELECT balance FROM wb_ledger WHERE consumer_id = $1 ORDER BY id DESC LIMIT 1;`,
		entry.ConsumerID,
	).Scan(&priorBalance)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to read prior balance for consumer %d", entry.ConsumerID), err)
	}

	newBalance := domain.NextBalance(priorBalance, entry.Debit, entry.Credit)
	status, particulars := domain.DeriveSettlement(entry.Particulars, entry.Status, newBalance)

	m := mapping.ToModelLedgerEntry(entry)
	m.DateEntered = time.Now().UTC()
	m.Particulars = particulars
	m.Balance = newBalance
	m.Status = int16(status)

	insertQuery := `
		INSERT INTO wb_ledger (consumer_id, ref_no, reading_date, date_entered, particulars, debit, credit, balance, by_user, status, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + ledgerColumns + `;
	`
	saved, err := scanLedgerEntry(tx.QueryRow(ctx, insertQuery,
		m.ConsumerID,
		m.RefNo,
		m.ReadingDate,
		m.DateEntered,
		m.Particulars,
		m.Debit,
		m.Credit,
		m.Balance,
		m.ByUser,
		m.Status,
		m.Amount,
	))
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to insert ledger entry for consumer %d", entry.ConsumerID), err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := mapping.ToDomainLedgerEntry(saved)
	return &result, nil
}

// CreateEntry inserts a raw ledger row with the caller-supplied balance.
// No balance derivation happens here; this is the administrative backfill
// path and callers are responsible for running-balance consistency.
func (r *PgxLedgerRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)
	m.DateEntered = time.Now().UTC()

	query := `
		INSERT INTO wb_ledger (consumer_id, ref_no, reading_date, date_entered, particulars, debit, credit, balance, by_user, status, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + ledgerColumns + `;
	`
	saved, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query,
		m.ConsumerID,
		m.RefNo,
		m.ReadingDate,
		m.DateEntered,
		m.Particulars,
		m.Debit,
		m.Credit,
		m.Balance,
		m.ByUser,
		m.Status,
		m.Amount,
	))
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to create ledger entry for consumer %d", entry.ConsumerID), err)
	}

	result := mapping.ToDomainLedgerEntry(saved)
	return &result, nil
}

// UpdateStatus corrects the payment status of an existing entry.
func (r *PgxLedgerRepository) UpdateStatus(ctx context.Context, id int64, status domain.LedgerStatus) (*domain.LedgerEntry, error) {
	query := `
		UPDATE wb_ledger SET status = $1 WHERE id = $2
		RETURNING ` + ledgerColumns + `;
	`
	saved, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, int16(status), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update status of ledger entry %d", id), err)
	}

	result := mapping.ToDomainLedgerEntry(saved)
	return &result, nil
}

// LatestBalance retrieves the balance of the consumer's most recent entry.
func (r *PgxLedgerRepository) LatestBalance(ctx context.Context, consumerID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx,
		`SELECT balance FROM wb_ledger WHERE consumer_id = $1 ORDER BY id DESC LIMIT 1;`,
		consumerID,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, apperrors.ErrNotFound
		}
		return decimal.Zero, apperrors.NewAppError(500, fmt.Sprintf("failed to read latest balance for consumer %d", consumerID), err)
	}
	return balance, nil
}

// ListEntries retrieves all ledger entries ordered by id.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	return r.queryEntries(ctx, `SELECT `+ledgerColumns+` FROM wb_ledger ORDER BY id;`)
}

// FindEntriesByConsumer retrieves all of one consumer's entries ordered by id.
func (r *PgxLedgerRepository) FindEntriesByConsumer(ctx context.Context, consumerID int64) ([]domain.LedgerEntry, error) {
	entries, err := r.queryEntries(ctx,
		`SELECT `+ledgerColumns+` FROM wb_ledger WHERE consumer_id = $1 ORDER BY id;`, consumerID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return entries, nil
}

func (r *PgxLedgerRepository) queryEntries(ctx context.Context, query string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		m, err := scanLedgerEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// DeleteEntry removes a ledger entry by id.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, id int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM wb_ledger WHERE id = $1;`, id)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete ledger entry %d", id), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
