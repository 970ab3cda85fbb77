package gateway

import (
	nsqpkg "github.com/barbershop-uz/backend/internal/pkg/nsq"
)

// AuthGW publishes auth lifecycle events over NSQ
type AuthGW struct {
	producer *nsqpkg.Producer
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(producer *nsqpkg.Producer) *AuthGW {
	return &AuthGW{producer: producer}
}
