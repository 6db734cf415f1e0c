package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mecmec98/billingrestapi/internal/apperrors"
	"github.com/mecmec98/billingrestapi/internal/core/domain"
	portsrepo "github.com/mecmec98/billingrestapi/internal/core/ports/repositories"
	"github.com/mecmec98/billingrestapi/internal/models"
	"github.com/mecmec98/billingrestapi/internal/utils/mapping"
)

const consumerColumns = `id, name, address, ratetype, metercode, meternumber, clusternumber, senior, seniorstart, seniorexpiry, status, prevreading, curreading`

type PgxConsumerRepository struct {
	BaseRepository
}

// newPgxConsumerRepository creates a new repository for consumer data.
func newPgxConsumerRepository(pool *pgxpool.Pool) portsrepo.ConsumerRepositoryFacade {
	return &PgxConsumerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ConsumerRepositoryFacade = (*PgxConsumerRepository)(nil)

func scanConsumer(row pgx.Row) (models.Consumer, error) {
	var m models.Consumer
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Address,
		&m.RateType,
		&m.MeterCode,
		&m.MeterNumber,
		&m.ClusterNumber,
		&m.Senior,
		&m.SeniorStart,
		&m.SeniorExpiry,
		&m.Status,
		&m.PrevReading,
		&m.CurReading,
	)
	return m, err
}

// ListConsumers retrieves every consumer ordered by id.
func (r *PgxConsumerRepository) ListConsumers(ctx context.Context) ([]domain.Consumer, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+consumerColumns+` FROM consumers ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query consumers", err)
	}
	defer rows.Close()

	consumers := []domain.Consumer{}
	for rows.Next() {
		m, err := scanConsumer(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan consumer row", err)
		}
		consumers = append(consumers, mapping.ToDomainConsumer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating consumer rows", err)
	}

	return consumers, nil
}

// FindConsumerByID retrieves a consumer by its primary key.
func (r *PgxConsumerRepository) FindConsumerByID(ctx context.Context, id int64) (*domain.Consumer, error) {
	m, err := scanConsumer(r.Pool.QueryRow(ctx, `SELECT `+consumerColumns+` FROM consumers WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find consumer %d", id), err)
	}

	result := mapping.ToDomainConsumer(m)
	return &result, nil
}

// CreateConsumer inserts a new consumer.
func (r *PgxConsumerRepository) CreateConsumer(ctx context.Context, consumer domain.Consumer) (*domain.Consumer, error) {
	query := `
		INSERT INTO consumers (name, address, ratetype, metercode, meternumber, clusternumber, senior, seniorstart, seniorexpiry, status, prevreading, curreading)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + consumerColumns + `;
	`
	m, err := scanConsumer(r.Pool.QueryRow(ctx, query,
		consumer.Name,
		consumer.Address,
		consumer.RateType,
		consumer.MeterCode,
		consumer.MeterNumber,
		consumer.ClusterNumber,
		consumer.Senior,
		consumer.SeniorStart,
		consumer.SeniorExpiry,
		consumer.Status,
		consumer.PrevReading,
		consumer.CurReading,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to create consumer "+consumer.Name, err)
	}

	result := mapping.ToDomainConsumer(m)
	return &result, nil
}

// UpdateConsumer overwrites a consumer row.
func (r *PgxConsumerRepository) UpdateConsumer(ctx context.Context, consumer domain.Consumer) (*domain.Consumer, error) {
	query := `
		UPDATE consumers
		SET name = $2, address = $3, ratetype = $4, metercode = $5, meternumber = $6, clusternumber = $7,
		    senior = $8, seniorstart = $9, seniorexpiry = $10, status = $11, prevreading = $12, curreading = $13
		WHERE id = $1
		RETURNING ` + consumerColumns + `;
	`
	m, err := scanConsumer(r.Pool.QueryRow(ctx, query,
		consumer.ID,
		consumer.Name,
		consumer.Address,
		consumer.RateType,
		consumer.MeterCode,
		consumer.MeterNumber,
		consumer.ClusterNumber,
		consumer.Senior,
		consumer.SeniorStart,
		consumer.SeniorExpiry,
		consumer.Status,
		consumer.PrevReading,
		consumer.CurReading,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update consumer %d", consumer.ID), err)
	}

	result := mapping.ToDomainConsumer(m)
	return &result, nil
}

// DeleteConsumer removes a consumer by id.
func (r *PgxConsumerRepository) DeleteConsumer(ctx context.Context, id int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM consumers WHERE id = $1;`, id)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete consumer %d", id), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
