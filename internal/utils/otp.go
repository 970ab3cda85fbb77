package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateOTPCode returns a uniformly random 6-digit decimal code in the
// range 100000-999999. The source is crypto/rand since codes gate account
// ownership.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP code: %w", err)
	}

	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
