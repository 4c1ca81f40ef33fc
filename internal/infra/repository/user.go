package repository

import (
	"context"
	"errors"

	"drivebook/internal/domain/user"
	"drivebook/internal/infra"
	"drivebook/internal/usecase"
	"drivebook/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUser, string, error) {
	const query = `
		SELECT id, email, name, password_hash, role, is_active, last_login_at
		FROM users WHERE email = $1`

	var (
		authorized readmodel.AuthorizedUser
		hash       string
	)
	err := r.db.QueryRow(ctx, query, email.Value()).Scan(
		&authorized.ID, &authorized.Email, &authorized.Name,
		&hash, &authorized.Role, &authorized.IsActive, &authorized.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", usecase.ErrUserNotFound
		}
		return nil, "", infra.WrapRepoErr("failed to read user", err)
	}
	return &authorized, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUser, error) {
	const query = `
		SELECT id, email, name, role, is_active, last_login_at
		FROM users WHERE id = $1`

	var authorized readmodel.AuthorizedUser
	err := r.db.QueryRow(ctx, query, id).Scan(
		&authorized.ID, &authorized.Email, &authorized.Name,
		&authorized.Role, &authorized.IsActive, &authorized.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, infra.WrapRepoErr("failed to read user", err)
	}
	return &authorized, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login_at = now() WHERE id = $1`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
