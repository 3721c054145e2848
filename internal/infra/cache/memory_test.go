package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStoreConsumesOnce(t *testing.T) {
	s := NewMemoryTokenStore()
	ctx := context.Background()

	ok, err := s.Consume(ctx, "abc", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Consume(ctx, "abc", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Consume(ctx, "def", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemoryTokenStoreExpires(t *testing.T) {
	s := NewMemoryTokenStore()
	ctx := context.Background()

	ok, _ := s.Consume(ctx, "short", 10*time.Millisecond)
	require.True(t, ok)

	time.Sleep(30 * time.Millisecond)

	ok, _ = s.Consume(ctx, "short", time.Minute)
	assert.True(t, ok)
}
