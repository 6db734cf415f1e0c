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

const userColumns = `id, username, password, role`

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(&m.ID, &m.Username, &m.Password, &m.Role)
	return m, err
}

// ListUsers retrieves every user ordered by id.
func (r *PgxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		users = append(users, mapping.ToDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}

	return users, nil
}

// FindUserByID retrieves a user by its primary key.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, id int) (*domain.User, error) {
	m, err := scanUser(r.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, fmt.Sprintf("failed to find user %d", id), err)
	}

	result := mapping.ToDomainUser(m)
	return &result, nil
}

// FindUserByUsername retrieves a user by username for authentication.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	m, err := scanUser(r.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1;`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+username, err)
	}

	result := mapping.ToDomainUser(m)
	return &result, nil
}

// CreateUser inserts a new user. The password must already be hashed.
func (r *PgxUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, password, role)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns + `;
	`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, user.Username, user.PasswordHash, user.Role))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrDuplicate
		}
		return nil, apperrors.NewAppError(500, "failed to create user "+user.Username, err)
	}

	result := mapping.ToDomainUser(m)
	return &result, nil
}

// UpdateUserPassword replaces a user's password hash.
func (r *PgxUserRepository) UpdateUserPassword(ctx context.Context, id int, passwordHash string) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE users SET password = $1 WHERE id = $2;`, passwordHash, id)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update password for user %d", id), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteUser removes a user by id.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, id int) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to delete user %d", id), err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
