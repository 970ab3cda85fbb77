package models

import (
	"time"
)

// OTP represents a one-time password issued for an email address.
// At most one live record exists per email; issuing a new code replaces
// any previous one.
type OTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the code is past its expiry at the given time.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
