package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/internal/pkg/validator"
	"github.com/barbershop-uz/backend/services/auth"
)

// ListUsers returns all registered users. The password hash is never scanned
// out of the store, so nothing needs to be stripped here.
func (s *AuthUC) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.ListUsers(ctx)
}

// UpdateUser applies a partial update. A password in the update is re-hashed
// before persisting.
func (s *AuthUC) UpdateUser(ctx context.Context, id uuid.UUID, update *models.UserUpdate) (*models.User, error) {
	if err := validator.Validate(update); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrValidation, err)
	}

	if update.Password != nil {
		hash, err := hashPassword(*update.Password)
		if err != nil {
			return nil, err
		}
		update.Password = &hash
	}

	return s.userRepo.UpdateUser(ctx, id, update)
}

// DeleteUser removes the user record
func (s *AuthUC) DeleteUser(ctx context.Context, id uuid.UUID) (*models.MessageResponse, error) {
	if err := s.userRepo.DeleteUser(ctx, id); err != nil {
		return nil, err
	}

	return &models.MessageResponse{Message: "User successfully deleted"}, nil
}
