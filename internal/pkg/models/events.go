package models

import (
	"time"

	"github.com/google/uuid"
)

// UserRegisteredEvent is published after a user completes registration
type UserRegisteredEvent struct {
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// PasswordResetEvent is published after a password reset completes
type PasswordResetEvent struct {
	Email   string    `json:"email"`
	ResetAt time.Time `json:"reset_at"`
}
