package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbershop-uz/backend/internal/pkg/models"
)

// UserRepo defines the persisted user store
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update *models.UserUpdate) (*models.User, error)
	UpdatePassword(ctx context.Context, email string, passwordHash string) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// OTPStore holds at most one live code per email. Saving replaces any prior
// record for that email; Get never returns an expired record; Consume removes
// the record so a code verifies at most once.
type OTPStore interface {
	Save(ctx context.Context, otp *models.OTP) error
	Get(ctx context.Context, email string) (*models.OTP, error)
	Consume(ctx context.Context, email string) error
}
