package service

import (
	"context"
	"time"
)

// SessionStore tracks access tokens revoked before their expiry.
type SessionStore interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
