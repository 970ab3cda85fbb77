package gateway

import (
	"github.com/barbershop-uz/backend/internal/pkg/constants"
	"github.com/barbershop-uz/backend/internal/pkg/models"
)

// PublishUserRegistered announces a completed registration
func (g *AuthGW) PublishUserRegistered(event *models.UserRegisteredEvent) error {
	return g.producer.Publish(constants.TopicUserRegistered, event)
}

// PublishPasswordReset announces a completed password reset
func (g *AuthGW) PublishPasswordReset(event *models.PasswordResetEvent) error {
	return g.producer.Publish(constants.TopicPasswordReset, event)
}
