package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lesnaszkolka/ino-backend/internal/apperrors"
	"github.com/lesnaszkolka/ino-backend/internal/core/domain"
	portsrepo "github.com/lesnaszkolka/ino-backend/internal/core/ports/repositories"
	"github.com/lesnaszkolka/ino-backend/internal/models"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) (models.User, error) {
	roles, err := json.Marshal(d.Roles)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to encode user roles: %w", err)
	}
	return models.User{
		UserID:   d.UserID,
		Email:    d.Email,
		Name:     d.Name,
		Roles:    string(roles),
		IsActive: d.IsActive,
	}, nil
}

func toDomainUser(m models.User) (domain.User, error) {
	var roles []string
	if err := json.Unmarshal([]byte(m.Roles), &roles); err != nil {
		return domain.User{}, fmt.Errorf("failed to decode roles for user %s: %w", m.UserID, err)
	}
	return domain.User{
		UserID:    m.UserID,
		Email:     m.Email,
		Name:      m.Name,
		Roles:     roles,
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

const userColumns = `id, email, name, roles, is_active, created_at, updated_at`

func scanUserRow(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Email,
		&m.Name,
		&m.Roles,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser, err := toModelUser(user)
	if err != nil {
		return nil, err
	}
	query := `
        INSERT INTO users (id, email, name, roles, is_active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING ` + userColumns + `;
    `
	saved, err := scanUserRow(r.Pool.QueryRow(ctx, query,
		modelUser.UserID,
		modelUser.Email,
		modelUser.Name,
		modelUser.Roles,
		modelUser.IsActive,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return nil, apperrors.ErrDuplicate
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	domainUser, err := toDomainUser(saved)
	if err != nil {
		return nil, err
	}
	return &domainUser, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser, err := toModelUser(user)
	if err != nil {
		return nil, err
	}
	query := `
        UPDATE users
        SET email = $1, name = $2, roles = $3, is_active = $4, updated_at = now()
        WHERE id = $5
        RETURNING ` + userColumns + `;
    `
	updated, err := scanUserRow(r.Pool.QueryRow(ctx, query,
		modelUser.Email,
		modelUser.Name,
		modelUser.Roles,
		modelUser.IsActive,
		modelUser.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user %s: %w", user.UserID, err)
	}

	domainUser, err := toDomainUser(updated)
	if err != nil {
		return nil, err
	}
	return &domainUser, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE id = $1 AND is_active = TRUE;
    `
	return r.findOne(ctx, query, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
        SELECT ` + userColumns + `
        FROM users
        WHERE email = $1 AND is_active = TRUE;
    `
	return r.findOne(ctx, query, email)
}

func (r *PgxUserRepository) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	modelUser, err := scanUserRow(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	domainUser, err := toDomainUser(modelUser)
	if err != nil {
		return nil, err
	}
	return &domainUser, nil
}
