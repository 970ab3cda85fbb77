package usecase

import (
	"github.com/barbershop-uz/backend/internal/pkg/mail"
	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/services/auth"
)

type AuthUC struct {
	cfg      *models.Config
	userRepo auth.UserRepo
	otpStore auth.OTPStore
	mailer   mail.Mailer
	authGW   auth.AuthGW
}

// NewAuthUC creates a new auth usecase instance. authGW may be nil when
// event publishing is disabled.
func NewAuthUC(cfg *models.Config, userRepo auth.UserRepo, otpStore auth.OTPStore, mailer mail.Mailer, authGW auth.AuthGW) *AuthUC {
	return &AuthUC{
		cfg:      cfg,
		userRepo: userRepo,
		otpStore: otpStore,
		mailer:   mailer,
		authGW:   authGW,
	}
}
