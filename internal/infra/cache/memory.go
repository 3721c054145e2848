package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryTokenStore is the process-local fallback used when REDIS_URL is unset.
type MemoryTokenStore struct {
	items *gocache.Cache
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{
		items: gocache.New(time.Hour, 10*time.Minute),
	}
}

func (s *MemoryTokenStore) Consume(_ context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = time.Second
	}
	// Add fails when the key exists and has not expired.
	if err := s.items.Add(keyPrefix+jti, struct{}{}, ttl); err != nil {
		return false, nil
	}
	return true, nil
}

var _ TokenStore = (*MemoryTokenStore)(nil)
