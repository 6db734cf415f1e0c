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

const machineColumns = `id, pos_name, serial_num, model, batch, series_current`

type PgxMachineRepository struct {
	BaseRepository
}

// newPgxMachineRepository creates a new repository for POS machine data.
func newPgxMachineRepository(pool *pgxpool.Pool) portsrepo.MachineRepositoryFacade {
	return &PgxMachineRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.MachineRepositoryFacade = (*PgxMachineRepository)(nil)

func scanMachine(row pgx.Row) (models.POSMachine, error) {
	var m models.POSMachine
	err := row.Scan(&m.ID, &m.PosName, &m.SerialNum, &m.Model, &m.Batch, &m.SeriesCurrent)
	return m, err
}

// ListMachines retrieves every POS machine.
func (r *PgxMachineRepository) ListMachines(ctx context.Context) ([]domain.POSMachine, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+machineColumns+` FROM pos_machine ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query pos machines", err)
	}
	defer rows.Close()

	machines := []models.POSMachine{}
	for rows.Next() {
		m, err := scanMachine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan pos machine row", err)
		}
		machines = append(machines, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating pos machine rows", err)
	}

	return mapping.ToDomainPOSMachineSlice(machines), nil
}

// FindMachineByID retrieves a machine by its primary key.
func (r *PgxMachineRepository) FindMachineByID(ctx context.Context, id int) (*domain.POSMachine, error) {
	m, err := scanMachine(r.Pool.QueryRow(ctx, `SELECT `+machineColumns+` FROM pos_machine WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find pos machine %d", id), err)
	}

	result := mapping.ToDomainPOSMachine(m)
	return &result, nil
}

// CreateMachine inserts a new POS machine with its series counter at zero.
func (r *PgxMachineRepository) CreateMachine(ctx context.Context, machine domain.POSMachine) (*domain.POSMachine, error) {
	query := `
		INSERT INTO pos_machine (pos_name, serial_num, model)
		VALUES ($1, $2, $3)
		RETURNING ` + machineColumns + `;
	`
	m, err := scanMachine(r.Pool.QueryRow(ctx, query, machine.PosName, machine.SerialNum, machine.Model))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to create pos machine "+machine.SerialNum, err)
	}

	result := mapping.ToDomainPOSMachine(m)
	return &result, nil
}

// UpdateMachine overwrites the descriptive fields of a machine. The series
// counter only moves through ForwardSeries.
func (r *PgxMachineRepository) UpdateMachine(ctx context.Context, machine domain.POSMachine) (*domain.POSMachine, error) {
	query := `
		UPDATE pos_machine SET pos_name = $2, serial_num = $3, model = $4 WHERE id = $1
		RETURNING ` + machineColumns + `;
	`
	m, err := scanMachine(r.Pool.QueryRow(ctx, query, machine.ID, machine.PosName, machine.SerialNum, machine.Model))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to update pos machine %d", machine.ID), err)
	}

	result := mapping.ToDomainPOSMachine(m)
	return &result, nil
}

// DeleteMachine removes a machine and returns the deleted row.
func (r *PgxMachineRepository) DeleteMachine(ctx context.Context, id int) (*domain.POSMachine, error) {
	m, err := scanMachine(r.Pool.QueryRow(ctx, `DELETE FROM pos_machine WHERE id = $1 RETURNING `+machineColumns+`;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to delete pos machine %d", id), err)
	}

	result := mapping.ToDomainPOSMachine(m)
	return &result, nil
}

// PeekSeries reads the OR counter without advancing it.
func (r *PgxMachineRepository) PeekSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error) {
	var s domain.ORSeries
	err := r.Pool.QueryRow(ctx,
		`SELECT serial_num, batch, series_current, LPAD(series_current::TEXT, 7, '0') FROM pos_machine WHERE serial_num = $1;`,
		serialNum,
	).Scan(&s.SerialNum, &s.Batch, &s.SeriesCurrent, &s.FormattedCurrent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to peek series for machine "+serialNum, err)
	}
	return &s, nil
}

// ForwardSeries advances the OR counter through the get_next_or_number SQL
// function. The function is a single row-locking UPDATE ... RETURNING, so the
// allocation is unique and monotonic under concurrent callers without any
// application-level counter.
func (r *PgxMachineRepository) ForwardSeries(ctx context.Context, serialNum string) (*domain.ORSeries, error) {
	var s domain.ORSeries
	err := r.Pool.QueryRow(ctx, `SELECT * FROM get_next_or_number($1);`, serialNum).
		Scan(&s.SerialNum, &s.Batch, &s.SeriesCurrent, &s.FormattedCurrent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to forward series for machine "+serialNum, err)
	}
	return &s, nil
}
