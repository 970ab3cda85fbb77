package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/barbershop-uz/backend/internal/pkg/jwt"
	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/internal/pkg/validator"
	"github.com/barbershop-uz/backend/internal/utils"
	"github.com/barbershop-uz/backend/services/auth"
)

// RegisterStep1 validates the registration payload, confirms the email is
// unused, and emails a one-time code. The password hash is returned but not
// persisted; the user record is only created in step 2.
func (s *AuthUC) RegisterStep1(ctx context.Context, req *models.RegisterStep1Request) (*models.RegisterStep1Response, error) {
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrValidation, err)
	}

	_, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil {
		return nil, auth.ErrDuplicateEmail
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	if err := s.issueOTP(ctx, req.Email); err != nil {
		return nil, err
	}

	return &models.RegisterStep1Response{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Message:      "Barber Shop code sent to your email",
	}, nil
}

// RegisterStep2 checks the emailed code, persists the user, and issues a
// fresh token pair. A duplicate email that slipped in between the two steps
// surfaces from the store's uniqueness constraint.
func (s *AuthUC) RegisterStep2(ctx context.Context, req *models.RegisterStep2Request) (*models.AuthResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrValidation, err)
	}

	if err := s.checkAndConsumeOTP(ctx, req.Email, req.Code); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	s.publishUserRegistered(user)

	return &models.AuthResponse{
		Message:      "User successfully registered",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login authenticates with email and password and issues a new, independent
// token pair on every call.
func (s *AuthUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrValidation, err)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Message:      "User successfully logged in",
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ResetPasswordStep1 emails a one-time code to an existing account
func (s *AuthUC) ResetPasswordStep1(ctx context.Context, req *models.ResetPasswordStep1Request) (*models.MessageResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrValidation, err)
	}

	if _, err := s.userRepo.GetUserByEmail(ctx, req.Email); err != nil {
		return nil, err
	}

	if err := s.issueOTP(ctx, req.Email); err != nil {
		return nil, err
	}

	return &models.MessageResponse{Message: "Barber Shop code sent to your email"}, nil
}

// ResetPasswordStep2 checks the emailed code and overwrites the stored
// password hash. No tokens are issued.
func (s *AuthUC) ResetPasswordStep2(ctx context.Context, req *models.ResetPasswordStep2Request) (*models.MessageResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrValidation, err)
	}

	if err := s.checkAndConsumeOTP(ctx, req.Email, req.Code); err != nil {
		return nil, err
	}

	hash, err := hashPassword(req.NewPassword)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdatePassword(ctx, req.Email, hash); err != nil {
		return nil, err
	}

	s.publishPasswordReset(req.Email)

	return &models.MessageResponse{Message: "Password successfully reset"}, nil
}

// issueOTP stores a fresh code for the email and dispatches it. The store is
// written first, so a mail failure leaves the new record in place; the flow
// still aborts with the delivery error.
func (s *AuthUC) issueOTP(ctx context.Context, email string) error {
	code, err := utils.GenerateOTPCode()
	if err != nil {
		return err
	}

	now := time.Now()
	otp := &models.OTP{
		Email:     email,
		Code:      code,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(s.cfg.OTP.Expiration) * time.Second),
	}

	if err := s.otpStore.Save(ctx, otp); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if err := s.mailer.SendOTP(ctx, email, code); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}

	return nil
}

// checkAndConsumeOTP verifies the submitted code against the live record.
// Expiry is checked before the value comparison; a successful match consumes
// the record so the code cannot be replayed. A mismatch leaves the record
// untouched.
func (s *AuthUC) checkAndConsumeOTP(ctx context.Context, email, code string) error {
	otp, err := s.otpStore.Get(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrOTPNotFound) {
			return auth.ErrInvalidOrExpiredCode
		}
		return fmt.Errorf("failed to read OTP: %w", err)
	}

	if otp.Expired(time.Now()) {
		return auth.ErrInvalidOrExpiredCode
	}

	if otp.Code != code {
		return auth.ErrInvalidOrExpiredCode
	}

	if err := s.otpStore.Consume(ctx, email); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}

	return nil
}

func (s *AuthUC) issueTokenPair(userID uuid.UUID) (string, string, error) {
	accessToken, err := jwtpkg.GenerateAccessToken(userID, s.cfg.JWT)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := jwtpkg.GenerateRefreshToken(userID, s.cfg.JWT)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return accessToken, refreshToken, nil
}

// Event publishing is best effort and never fails the request
func (s *AuthUC) publishUserRegistered(user *models.User) {
	if s.authGW == nil {
		return
	}

	event := &models.UserRegisteredEvent{
		UserID:       user.ID,
		Name:         user.Name,
		Email:        user.Email,
		RegisteredAt: user.CreatedAt,
	}
	if err := s.authGW.PublishUserRegistered(event); err != nil {
		logrus.WithError(err).Warn("failed to publish user registered event")
	}
}

func (s *AuthUC) publishPasswordReset(email string) {
	if s.authGW == nil {
		return
	}

	event := &models.PasswordResetEvent{
		Email:   email,
		ResetAt: time.Now(),
	}
	if err := s.authGW.PublishPasswordReset(event); err != nil {
		logrus.WithError(err).Warn("failed to publish password reset event")
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
