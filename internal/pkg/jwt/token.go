package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/barbershop-uz/backend/internal/pkg/models"
)

// ErrInvalidToken is returned when a token is malformed, expired, or its
// signature does not verify against the given secret.
var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateAccessToken generates a short-lived access token for the given user
func GenerateAccessToken(userID uuid.UUID, cfg models.JWTConfig) (string, error) {
	ttl := time.Duration(cfg.AccessExpiration) * time.Minute
	return signToken(userID, cfg.AccessSecret, cfg.Issuer, ttl)
}

// GenerateRefreshToken generates a long-lived refresh token for the given user
func GenerateRefreshToken(userID uuid.UUID, cfg models.JWTConfig) (string, error) {
	ttl := time.Duration(cfg.RefreshExpiration) * time.Minute
	return signToken(userID, cfg.RefreshSecret, cfg.Issuer, ttl)
}

func signToken(userID uuid.UUID, secret, issuer string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"id":  userID.String(),
		"exp": time.Now().Add(ttl).Unix(),
		"iss": issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken validates a token against the given secret and returns the
// embedded claims. Expiry is checked by the parser.
func ValidateToken(tokenString string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// UserIDFromClaims extracts the user id claim
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["id"]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: missing id claim", ErrInvalidToken)
	}

	id, err := uuid.Parse(fmt.Sprintf("%v", raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id claim is not a valid UUID", ErrInvalidToken)
	}

	return id, nil
}
