package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/services/auth"
)

const uniqueViolation = "23505"

// CreateUser inserts a new user. A duplicate email surfaces as
// auth.ErrDuplicateEmail via the unique constraint on the email column.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return auth.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByID retrieves a user by id
func (r *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return r.getUserByField(ctx, "id", id)
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getUserByField(ctx, "email", email)
}

func (r *UserRepo) getUserByField(ctx context.Context, field string, value interface{}) (*models.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, password, created_at, updated_at
		FROM users
		WHERE %s = $1
	`, field)

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ListUsers returns all users. The password column is deliberately not
// selected.
func (r *UserRepo) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, name, email, created_at, updated_at
		FROM users
		ORDER BY created_at
	`

	users := []*models.User{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// UpdateUser applies a partial update and returns the updated record
func (r *UserRepo) UpdateUser(ctx context.Context, id uuid.UUID, update *models.UserUpdate) (*models.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE($2, name),
		    password = COALESCE($3, password),
		    updated_at = $4
		WHERE id = $1
		RETURNING id, name, email, created_at, updated_at
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id, update.Name, update.Password, time.Now())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &user, nil
}

// UpdatePassword overwrites the stored password hash for the email
func (r *UserRepo) UpdatePassword(ctx context.Context, email string, passwordHash string) error {
	query := `
		UPDATE users
		SET password = $2, updated_at = $3
		WHERE email = $1
	`

	result, err := r.db.ExecContext(ctx, query, email, passwordHash, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}

// DeleteUser removes a user by id
func (r *UserRepo) DeleteUser(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}
