// Package cache remembers one-time token ids so a password-reset link works once.
package cache

import (
	"context"
	"time"
)

// TokenStore records consumed token ids. Consume reports false when the id was
// already used.
type TokenStore interface {
	Consume(ctx context.Context, jti string, ttl time.Duration) (bool, error)
}

const keyPrefix = "token:used:"
