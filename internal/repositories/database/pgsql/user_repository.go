package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/todo_backend/internal/apperrors"
	"github.com/SscSPs/todo_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/todo_backend/internal/core/ports/repositories"
	"github.com/SscSPs/todo_backend/internal/models"
	"github.com/SscSPs/todo_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db PgxPool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const (
	usersTable = "users"

	selectUserFields = `user_id, name, email, password_hash, refresh_token_hash, refresh_token_expires_at, created_at, last_updated_at`

	insertUserQuery = `INSERT INTO ` + usersTable + ` (user_id, name, email, password_hash, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	findUserByIDQuery = `SELECT ` + selectUserFields + ` FROM ` + usersTable + ` WHERE user_id = $1`

	findUserByEmailQuery = `SELECT ` + selectUserFields + ` FROM ` + usersTable + ` WHERE email = $1`

	updateUserQuery = `UPDATE ` + usersTable + ` SET name = $1, last_updated_at = $2 WHERE user_id = $3`

	deleteUserQuery = `DELETE FROM ` + usersTable + ` WHERE user_id = $1`

	updateRefreshTokenQuery = `UPDATE ` + usersTable + `
		SET refresh_token_hash = $1, refresh_token_expires_at = $2
		WHERE user_id = $3`

	clearRefreshTokenQuery = `UPDATE ` + usersTable + `
		SET refresh_token_hash = NULL, refresh_token_expires_at = NULL
		WHERE user_id = $1`
)

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.PasswordHash,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.exec(ctx, insertUserQuery,
		m.UserID,
		m.Name,
		m.Email,
		m.PasswordHash,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with email %s: %w", m.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := scanUser(r.queryRow(ctx, findUserByIDQuery, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(r.queryRow(ctx, findUserByEmailQuery, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	cmdTag, err := r.exec(ctx, updateUserQuery, user.Name, user.LastUpdatedAt, user.UserID)
	if err != nil {
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", user.UserID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteUser relies on ON DELETE CASCADE to remove the user's todos.
func (r *PgxUserRepository) DeleteUser(ctx context.Context, userID string) error {
	cmdTag, err := r.exec(ctx, deleteUserQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

// UpdateRefreshToken overwrites the stored token unconditionally; concurrent logins resolve as last write wins.
func (r *PgxUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	cmdTag, err := r.exec(ctx, updateRefreshTokenQuery, refreshTokenHash, refreshTokenExpiryTime, userID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	cmdTag, err := r.exec(ctx, clearRefreshTokenQuery, userID)
	if err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", userID, apperrors.ErrNotFound)
	}
	return nil
}
