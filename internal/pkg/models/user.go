package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered account
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"` // bcrypt hash, never serialized
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UserUpdate carries a partial user update; nil fields are left untouched
type UserUpdate struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Password *string `json:"password" validate:"omitempty,min=6"`
}

// RegisterStep1Request represents the first registration step
type RegisterStep1Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterStep2Request represents the second registration step with the emailed code
type RegisterStep2Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Code     string `json:"code" validate:"required,len=6,numeric"`
}

// LoginRequest represents an email/password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ResetPasswordStep1Request starts a password reset for an existing account
type ResetPasswordStep1Request struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordStep2Request completes a password reset with the emailed code
type ResetPasswordStep2Request struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

// RegisterStep1Response confirms that the verification code was sent.
// The password hash is returned to the caller but not yet persisted; the
// user record is only created when step 2 succeeds.
type RegisterStep1Response struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Message      string `json:"message"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Message      string `json:"message"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// MessageResponse is a plain confirmation payload
type MessageResponse struct {
	Message string `json:"message"`
}
