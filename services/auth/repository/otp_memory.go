package repository

import (
	"context"
	"sync"
	"time"

	"github.com/barbershop-uz/backend/internal/pkg/models"
	"github.com/barbershop-uz/backend/services/auth"
)

// MemoryOTPStore keeps live codes in a mutex-guarded map keyed by email.
// Saving replaces any prior record for the email in a single write, so
// concurrent issue/verify interleavings observe either the old or the new
// record, never a torn one. Expired records are dropped on read and by the
// periodic sweeper.
type MemoryOTPStore struct {
	mu   sync.Mutex
	otps map[string]*models.OTP
}

// NewMemoryOTPStore creates an empty in-memory OTP store
func NewMemoryOTPStore() *MemoryOTPStore {
	return &MemoryOTPStore{
		otps: make(map[string]*models.OTP),
	}
}

// Save stores the record, replacing any live code for the same email
func (s *MemoryOTPStore) Save(_ context.Context, otp *models.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.otps[otp.Email] = otp
	return nil
}

// Get returns the live record for the email. An expired record is evicted
// and reported as not found.
func (s *MemoryOTPStore) Get(_ context.Context, email string) (*models.OTP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	otp, ok := s.otps[email]
	if !ok {
		return nil, auth.ErrOTPNotFound
	}

	if otp.Expired(time.Now()) {
		delete(s.otps, email)
		return nil, auth.ErrOTPNotFound
	}

	return otp, nil
}

// Consume removes the record so the code cannot be used again
func (s *MemoryOTPStore) Consume(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.otps, email)
	return nil
}

// StartSweeper evicts expired records at the given interval until the
// context is cancelled.
func (s *MemoryOTPStore) StartSweeper(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(time.Now())
			}
		}
	}()
}

func (s *MemoryOTPStore) sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for email, otp := range s.otps {
		if otp.Expired(now) {
			delete(s.otps, email)
		}
	}
}

func (s *MemoryOTPStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.otps)
}
