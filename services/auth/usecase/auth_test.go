package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/barbershop-uz/backend/internal/pkg/jwt"
	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/services/auth"
	"github.com/barbershop-uz/backend/services/auth/repository"
)

func getTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			AccessSecret:      "access-secret-for-tests",
			RefreshSecret:     "refresh-secret-for-tests",
			AccessExpiration:  180,
			RefreshExpiration: 10080,
			Issuer:            "barbershop-test",
		},
		OTP: models.OTPConfig{
			Store:      "memory",
			Expiration: 300, // 5 minutes
		},
	}
}

// newTestUC wires a usecase around mocks and a real in-memory OTP store
func newTestUC(t *testing.T) (*AuthUC, *MockUserRepo, *repository.MemoryOTPStore, *MockMailer, *MockAuthGW) {
	t.Helper()
	mockRepo := new(MockUserRepo)
	mockMailer := new(MockMailer)
	mockGW := new(MockAuthGW)
	otpStore := repository.NewMemoryOTPStore()
	uc := NewAuthUC(getTestConfig(), mockRepo, otpStore, mockMailer, mockGW)
	return uc, mockRepo, otpStore, mockMailer, mockGW
}

func TestRegisterStep1_Success(t *testing.T) {
	uc, mockRepo, otpStore, mockMailer, _ := newTestUC(t)

	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(nil, auth.ErrUserNotFound)

	var sentCode string
	mockMailer.On("SendOTP", mock.Anything, "ana@example.com", mock.Anything).
		Run(func(args mock.Arguments) {
			sentCode = args.String(2)
		}).
		Return(nil)

	before := time.Now()
	resp, err := uc.RegisterStep1(context.Background(), &models.RegisterStep1Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", resp.Name)
	assert.Equal(t, "ana@example.com", resp.Email)
	assert.Equal(t, "Barber Shop code sent to your email", resp.Message)

	// The returned hash matches the submitted password but nothing was persisted
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.PasswordHash), []byte("secret123")))
	mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)

	// Exactly one live record, expiring five minutes from issuance
	otp, err := otpStore.Get(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, sentCode, otp.Code)
	assert.Len(t, otp.Code, 6)
	assert.WithinDuration(t, before.Add(5*time.Minute), otp.ExpiresAt, 2*time.Second)
}

func TestRegisterStep1_DuplicateEmail(t *testing.T) {
	uc, mockRepo, _, _, _ := newTestUC(t)

	mockRepo.On("GetUserByEmail", mock.Anything, "taken@example.com").
		Return(&models.User{Email: "taken@example.com"}, nil)

	_, err := uc.RegisterStep1(context.Background(), &models.RegisterStep1Request{
		Name:     "Ana",
		Email:    "taken@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrDuplicateEmail)
}

func TestRegisterStep1_InvalidEmail(t *testing.T) {
	uc, _, _, _, _ := newTestUC(t)

	_, err := uc.RegisterStep1(context.Background(), &models.RegisterStep1Request{
		Name:     "Ana",
		Email:    "not-an-email",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrValidation)
}

func TestRegisterStep1_MailDeliveryFailure(t *testing.T) {
	uc, mockRepo, _, mockMailer, _ := newTestUC(t)

	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(nil, auth.ErrUserNotFound)
	mockMailer.On("SendOTP", mock.Anything, "ana@example.com", mock.Anything).
		Return(errors.New("smtp connection refused"))

	_, err := uc.RegisterStep1(context.Background(), &models.RegisterStep1Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send OTP")
}

// registerStep1 drives the full step 1 flow and returns the emailed code
func registerStep1(t *testing.T, uc *AuthUC, mockRepo *MockUserRepo, mockMailer *MockMailer, email string) string {
	t.Helper()

	mockRepo.On("GetUserByEmail", mock.Anything, email).
		Return(nil, auth.ErrUserNotFound).Once()

	var sentCode string
	mockMailer.On("SendOTP", mock.Anything, email, mock.Anything).
		Run(func(args mock.Arguments) {
			sentCode = args.String(2)
		}).
		Return(nil).Once()

	_, err := uc.RegisterStep1(context.Background(), &models.RegisterStep1Request{
		Name:     "Ana",
		Email:    email,
		Password: "secret123",
	})
	require.NoError(t, err)
	require.NotEmpty(t, sentCode)

	return sentCode
}

func TestRegisterStep2_Success(t *testing.T) {
	uc, mockRepo, _, mockMailer, mockGW := newTestUC(t)
	cfg := getTestConfig()

	code := registerStep1(t, uc, mockRepo, mockMailer, "ana@example.com")

	var createdUser *models.User
	mockRepo.On("CreateUser", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			createdUser = args.Get(1).(*models.User)
		}).
		Return(nil)
	mockGW.On("PublishUserRegistered", mock.Anything).Return(nil)

	resp, err := uc.RegisterStep2(context.Background(), &models.RegisterStep2Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Code:     code,
	})

	require.NoError(t, err)
	assert.Equal(t, "User successfully registered", resp.Message)
	require.NotNil(t, createdUser)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("secret123")))

	// Access token claims decode to the newly created user's id
	claims, err := jwtpkg.ValidateToken(resp.AccessToken, cfg.JWT.AccessSecret)
	require.NoError(t, err)
	id, err := jwtpkg.UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, createdUser.ID, id)

	// Refresh token verifies only under the refresh secret
	_, err = jwtpkg.ValidateToken(resp.RefreshToken, cfg.JWT.RefreshSecret)
	assert.NoError(t, err)
	_, err = jwtpkg.ValidateToken(resp.RefreshToken, cfg.JWT.AccessSecret)
	assert.ErrorIs(t, err, jwtpkg.ErrInvalidToken)

	mockGW.AssertCalled(t, "PublishUserRegistered", mock.Anything)

	// The code was consumed; replaying it fails
	_, err = uc.RegisterStep2(context.Background(), &models.RegisterStep2Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Code:     code,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredCode)
}

func TestRegisterStep2_WrongCodeLeavesRecordUsable(t *testing.T) {
	uc, mockRepo, _, mockMailer, mockGW := newTestUC(t)

	code := registerStep1(t, uc, mockRepo, mockMailer, "ana@example.com")

	wrongCode := "000000"
	if wrongCode == code {
		wrongCode = "000001"
	}

	_, err := uc.RegisterStep2(context.Background(), &models.RegisterStep2Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Code:     wrongCode,
	})
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredCode)

	// The correct code still verifies within the window
	mockRepo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	mockGW.On("PublishUserRegistered", mock.Anything).Return(nil)

	_, err = uc.RegisterStep2(context.Background(), &models.RegisterStep2Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Code:     code,
	})
	assert.NoError(t, err)
}

func TestRegisterStep2_ExpiredCode(t *testing.T) {
	uc, _, otpStore, _, _ := newTestUC(t)

	// Seed a record that is already past its expiry
	now := time.Now()
	require.NoError(t, otpStore.Save(context.Background(), &models.OTP{
		Email:     "ana@example.com",
		Code:      "123456",
		CreatedAt: now.Add(-10 * time.Minute),
		ExpiresAt: now.Add(-5 * time.Minute),
	}))

	// The correct value fails once expired
	_, err := uc.RegisterStep2(context.Background(), &models.RegisterStep2Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Code:     "123456",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredCode)
}

func TestRegisterStep2_ReissueInvalidatesOldCode(t *testing.T) {
	uc, mockRepo, _, mockMailer, mockGW := newTestUC(t)

	firstCode := registerStep1(t, uc, mockRepo, mockMailer, "ana@example.com")
	secondCode := registerStep1(t, uc, mockRepo, mockMailer, "ana@example.com")

	if firstCode != secondCode {
		_, err := uc.RegisterStep2(context.Background(), &models.RegisterStep2Request{
			Name:     "Ana",
			Email:    "ana@example.com",
			Password: "secret123",
			Code:     firstCode,
		})
		assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredCode)
	}

	mockRepo.On("CreateUser", mock.Anything, mock.Anything).Return(nil)
	mockGW.On("PublishUserRegistered", mock.Anything).Return(nil)

	_, err := uc.RegisterStep2(context.Background(), &models.RegisterStep2Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Code:     secondCode,
	})
	assert.NoError(t, err)
}

func TestRegisterStep2_DuplicateEmailRace(t *testing.T) {
	uc, mockRepo, _, mockMailer, _ := newTestUC(t)

	code := registerStep1(t, uc, mockRepo, mockMailer, "ana@example.com")

	// Someone registered the email between the two steps; the uniqueness
	// constraint reports it
	mockRepo.On("CreateUser", mock.Anything, mock.Anything).
		Return(auth.ErrDuplicateEmail)

	_, err := uc.RegisterStep2(context.Background(), &models.RegisterStep2Request{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "secret123",
		Code:     code,
	})
	assert.ErrorIs(t, err, auth.ErrDuplicateEmail)
}

func TestLogin_Success(t *testing.T) {
	uc, mockRepo, _, _, _ := newTestUC(t)
	cfg := getTestConfig()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &models.User{
		ID:       uuid.New(),
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: string(hash),
	}
	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ana@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "User successfully logged in", resp.Message)

	claims, err := jwtpkg.ValidateToken(resp.AccessToken, cfg.JWT.AccessSecret)
	require.NoError(t, err)
	id, err := jwtpkg.UserIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)

	// An access token never verifies under the refresh secret
	_, err = jwtpkg.ValidateToken(resp.AccessToken, cfg.JWT.RefreshSecret)
	assert.ErrorIs(t, err, jwtpkg.ErrInvalidToken)
}

func TestLogin_IssuesIndependentTokenPairs(t *testing.T) {
	uc, mockRepo, _, _, _ := newTestUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := &models.User{ID: uuid.New(), Email: "ana@example.com", Password: string(hash)}
	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").Return(user, nil)

	req := &models.LoginRequest{Email: "ana@example.com", Password: "secret123"}

	first, err := uc.Login(context.Background(), req)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // distinct exp second
	second, err := uc.Login(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.AccessToken, second.AccessToken)
}

func TestLogin_UserNotFound(t *testing.T) {
	uc, mockRepo, _, _, _ := newTestUC(t)

	mockRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, auth.ErrUserNotFound)

	_, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, mockRepo, _, _, _ := newTestUC(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(&models.User{Email: "ana@example.com", Password: string(hash)}, nil)

	_, err = uc.Login(context.Background(), &models.LoginRequest{
		Email:    "ana@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestResetPasswordStep1_Success(t *testing.T) {
	uc, mockRepo, otpStore, mockMailer, _ := newTestUC(t)

	mockRepo.On("GetUserByEmail", mock.Anything, "ana@example.com").
		Return(&models.User{Email: "ana@example.com"}, nil)
	mockMailer.On("SendOTP", mock.Anything, "ana@example.com", mock.Anything).Return(nil)

	resp, err := uc.ResetPasswordStep1(context.Background(), &models.ResetPasswordStep1Request{
		Email: "ana@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Barber Shop code sent to your email", resp.Message)

	_, err = otpStore.Get(context.Background(), "ana@example.com")
	assert.NoError(t, err)
}

func TestResetPasswordStep1_UserNotFound(t *testing.T) {
	uc, mockRepo, _, _, _ := newTestUC(t)

	mockRepo.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, auth.ErrUserNotFound)

	_, err := uc.ResetPasswordStep1(context.Background(), &models.ResetPasswordStep1Request{
		Email: "nobody@example.com",
	})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}

func TestResetPasswordStep2_Success(t *testing.T) {
	uc, mockRepo, otpStore, _, mockGW := newTestUC(t)

	now := time.Now()
	require.NoError(t, otpStore.Save(context.Background(), &models.OTP{
		Email:     "ana@example.com",
		Code:      "123456",
		CreatedAt: now,
		ExpiresAt: now.Add(5 * time.Minute),
	}))

	var storedHash string
	mockRepo.On("UpdatePassword", mock.Anything, "ana@example.com", mock.Anything).
		Run(func(args mock.Arguments) {
			storedHash = args.String(2)
		}).
		Return(nil)
	mockGW.On("PublishPasswordReset", mock.Anything).Return(nil)

	resp, err := uc.ResetPasswordStep2(context.Background(), &models.ResetPasswordStep2Request{
		Email:       "ana@example.com",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "Password successfully reset", resp.Message)

	// The stored hash matches the new password and not the old one
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("brand-new-pass")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret123")))

	// The code was consumed
	_, err = uc.ResetPasswordStep2(context.Background(), &models.ResetPasswordStep2Request{
		Email:       "ana@example.com",
		Code:        "123456",
		NewPassword: "another-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredCode)
}

func TestResetPasswordStep2_InvalidCode(t *testing.T) {
	uc, _, _, _, _ := newTestUC(t)

	_, err := uc.ResetPasswordStep2(context.Background(), &models.ResetPasswordStep2Request{
		Email:       "ana@example.com",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidOrExpiredCode)
}
