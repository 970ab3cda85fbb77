package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/barbershop-uz/backend/internal/pkg/models"
)

// AuthUC defines the credential and OTP business logic
type AuthUC interface {
	RegisterStep1(ctx context.Context, req *models.RegisterStep1Request) (*models.RegisterStep1Response, error)
	RegisterStep2(ctx context.Context, req *models.RegisterStep2Request) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ResetPasswordStep1(ctx context.Context, req *models.ResetPasswordStep1Request) (*models.MessageResponse, error)
	ResetPasswordStep2(ctx context.Context, req *models.ResetPasswordStep2Request) (*models.MessageResponse, error)

	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, update *models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*models.MessageResponse, error)
}
