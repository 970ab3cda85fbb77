package auth

import (
	"github.com/barbershop-uz/backend/internal/pkg/models"
)

// AuthGW publishes auth lifecycle events for downstream consumers
type AuthGW interface {
	PublishUserRegistered(event *models.UserRegisteredEvent) error
	PublishPasswordReset(event *models.PasswordResetEvent) error
}
