package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mecmec98/billingrestapi/internal/apperrors"
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portsrepo "github.com/mecmec98/billingrestapi/internal/core/ports/repositories"
	"github.com/mecmec98/billingrestapi/internal/models"
	"github.com/mecmec98/billingrestapi/internal/utils/mapping"
	"github.com/shopspring/decimal"
)

const receiptColumns = `id, or_number, machine_sn, items, to_customer, by_user, total_amount, payment_mode, status, remit_batch, date_remitted, series_batch`

// remitBatchLockKey is the advisory lock key that serializes remit batch
// allocation across all instances. Without it two concurrent remittances
// could both read the same max(remit_batch).
const remitBatchLockKey = 815001

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a new repository for receipt data.
func newPgxReceiptRepository(pool *pgxpool.Pool) portsrepo.ReceiptRepositoryWithTx {
	return &PgxReceiptRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxReceiptRepository implements portsrepo.ReceiptRepositoryWithTx
var _ portsrepo.ReceiptRepositoryWithTx = (*PgxReceiptRepository)(nil)

func scanReceipt(row pgx.Row) (models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(
		&m.ID,
		&m.ORNumber,
		&m.MachineSN,
		&m.Items,
		&m.ToCustomer,
		&m.ByUser,
		&m.TotalAmount,
		&m.PaymentMode,
		&m.Status,
		&m.RemitBatch,
		&m.DateRemitted,
		&m.SeriesBatch,
	)
	return m, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// Remit batches every issued receipt of the machine into the next remittance
// batch, all inside one transaction. Batch numbers are global across
// machines: the allocation takes a transaction-scoped advisory lock before
// computing max(remit_batch)+1, so concurrent remittances (any machines)
// serialize at that step and never share a number. When the machine has no
// issued receipts the transaction rolls back and the zero-count result is
// returned without consuming a batch number.
func (r *PgxReceiptRepository) Remit(ctx context.Context, machineSN string) (*domain.RemittanceResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1);`, remitBatchLockKey); err != nil {
		return nil, apperrors.NewAppError(500, "failed to acquire remit batch lock", err)
	}

	var maxBatch int
	err = tx.QueryRow(ctx,
		`SELECT COALESCE(MAX(remit_batch), 0) FROM receipts WHERE status = $1;`,
		int16(domain.ReceiptRemitted),
	).Scan(&maxBatch)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to compute next remit batch", err)
	}
	nextBatch := maxBatch + 1

	var pending int64
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM receipts WHERE machine_sn = $1 AND status = $2;`,
		machineSN, int16(domain.ReceiptIssued),
	).Scan(&pending)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to count unremitted receipts for machine %s", machineSN), err)
	}
	if pending == 0 {
		// Nothing to remit is not a failure; roll back so the batch number
		// is never consumed.
		if err := r.Rollback(ctx, tx); err != nil {
			return nil, err
		}
		return &domain.RemittanceResult{MachineSN: machineSN}, nil
	}

	updateQuery := `
		UPDATE receipts
		SET status = $1, remit_batch = $2, date_remitted = $3
		WHERE machine_sn = $4 AND status = $5
		RETURNING ` + receiptColumns + `;
	`
	rows, err := tx.Query(ctx, updateQuery,
		int16(domain.ReceiptRemitted),
		nextBatch,
		time.Now().UTC(),
		machineSN,
		int16(domain.ReceiptIssued),
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to remit receipts for machine %s", machineSN), err)
	}

	updated := []models.Receipt{}
	total := decimal.Zero
	for rows.Next() {
		m, scanErr := scanReceipt(rows)
		if scanErr != nil {
			rows.Close()
			return nil, apperrors.NewAppError(500, "failed to scan remitted receipt row", scanErr)
		}
		total = total.Add(m.TotalAmount)
		updated = append(updated, m)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating remitted receipt rows", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.RemittanceResult{
		MachineSN:   machineSN,
		Remitted:    len(updated),
		RemitBatch:  nextBatch,
		TotalAmount: total,
		Receipts:    mapping.ToDomainReceiptSlice(updated),
	}, nil
}

// RemitSummary aggregates remitted receipts by machine and batch, newest
// batch first. A nil machineSN returns the summary across all machines.
func (r *PgxReceiptRepository) RemitSummary(ctx context.Context, machineSN *string) ([]domain.RemitBatchSummary, error) {
	baseQuery := `
		SELECT machine_sn, remit_batch, COUNT(*) AS receipt_count, SUM(total_amount) AS total_amount, MIN(date_remitted) AS remit_date
		FROM receipts
		WHERE status = $1 AND remit_batch IS NOT NULL
	`
	var rows pgx.Rows
	var err error
	if machineSN != nil {
		query := baseQuery + ` AND machine_sn = $2 GROUP BY machine_sn, remit_batch ORDER BY remit_batch DESC;`
		rows, err = r.Pool.Query(ctx, query, int16(domain.ReceiptRemitted), *machineSN)
	} else {
		query := baseQuery + ` GROUP BY machine_sn, remit_batch ORDER BY machine_sn, remit_batch DESC;`
		rows, err = r.Pool.Query(ctx, query, int16(domain.ReceiptRemitted))
	}
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query remit summary", err)
	}
	defer rows.Close()

	summaries := []domain.RemitBatchSummary{}
	for rows.Next() {
		var m models.RemitBatchSummary
		if err := rows.Scan(&m.MachineSN, &m.RemitBatch, &m.ReceiptCount, &m.TotalAmount, &m.RemitDate); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan remit summary row", err)
		}
		summaries = append(summaries, mapping.ToDomainRemitBatchSummary(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating remit summary rows", err)
	}

	return summaries, nil
}

// ListReceipts retrieves every receipt ordered by id.
func (r *PgxReceiptRepository) ListReceipts(ctx context.Context) ([]domain.Receipt, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+receiptColumns+` FROM receipts ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query receipts", err)
	}
	defer rows.Close()

	receipts := []models.Receipt{}
	for rows.Next() {
		m, err := scanReceipt(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan receipt row", err)
		}
		receipts = append(receipts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating receipt rows", err)
	}

	return mapping.ToDomainReceiptSlice(receipts), nil
}

// FindReceiptByID retrieves a receipt by its primary key.
func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, id int64) (*domain.Receipt, error) {
	m, err := scanReceipt(r.Pool.QueryRow(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find receipt %d", id), err)
	}

	result := mapping.ToDomainReceipt(m)
	return &result, nil
}

// CreateReceipt inserts an issued receipt.
func (r *PgxReceiptRepository) CreateReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	m := mapping.ToModelReceipt(receipt)
	query := `
		INSERT INTO receipts (or_number, machine_sn, items, to_customer, by_user, total_amount, payment_mode, status, series_batch)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + receiptColumns + `;
	`
	saved, err := scanReceipt(r.Pool.QueryRow(ctx, query,
		m.ORNumber,
		m.MachineSN,
		m.Items,
		m.ToCustomer,
		m.ByUser,
		m.TotalAmount,
		m.PaymentMode,
		int16(domain.ReceiptIssued),
		m.SeriesBatch,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to create receipt "+receipt.ORNumber, err)
	}

	result := mapping.ToDomainReceipt(saved)
	return &result, nil
}

// UpdateReceipt overwrites the mutable fields of a receipt. Remittance fields
// are never touched here.
func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) (*domain.Receipt, error) {
	m := mapping.ToModelReceipt(receipt)
	query := `
		UPDATE receipts
		SET items = $2, to_customer = $3, by_user = $4, total_amount = $5, payment_mode = $6
		WHERE id = $1
		RETURNING ` + receiptColumns + `;
	`
	saved, err := scanReceipt(r.Pool.QueryRow(ctx, query,
		m.ID,
		m.Items,
		m.ToCustomer,
		m.ByUser,
		m.TotalAmount,
		m.PaymentMode,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update receipt %d", receipt.ID), err)
	}

	result := mapping.ToDomainReceipt(saved)
	return &result, nil
}

// DeleteReceipt removes a receipt by id.
func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, id int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM receipts WHERE id = $1;`, id)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete receipt %d", id), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
