package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barbershop-uz/backend/internal/pkg/database"
	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/services/auth"
)

// RedisOTPStore keeps live codes in Redis under a per-email key with a TTL,
// so records survive restarts and are shared across instances. Redis expiry
// replaces the memory store's sweeper.
type RedisOTPStore struct {
	client *database.RedisClient
}

// NewRedisOTPStore creates a Redis-backed OTP store
func NewRedisOTPStore(client *database.RedisClient) *RedisOTPStore {
	return &RedisOTPStore{client: client}
}

func otpKey(email string) string {
	return "otp:" + email
}

// Save stores the code under the email key; SET replaces any prior code and
// resets the TTL in one operation.
func (s *RedisOTPStore) Save(ctx context.Context, otp *models.OTP) error {
	ttl := time.Until(otp.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("OTP for %s is already expired", otp.Email)
	}

	if err := s.client.Set(ctx, otpKey(otp.Email), otp.Code, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	return nil
}

// Get reconstructs the record from the stored code and the key's remaining
// TTL. A missing or expired key reports not found.
func (s *RedisOTPStore) Get(ctx context.Context, email string) (*models.OTP, error) {
	key := otpKey(email)

	code, err := s.client.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, auth.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to read OTP: %w", err)
	}

	ttl, err := s.client.TTL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to read OTP TTL: %w", err)
	}

	return &models.OTP{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(ttl),
	}, nil
}

// Consume deletes the key so the code cannot be used again
func (s *RedisOTPStore) Consume(ctx context.Context, email string) error {
	if err := s.client.Delete(ctx, otpKey(email)); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	return nil
}
