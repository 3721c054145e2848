package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSigner() *Signer {
	return NewSigner("test-secret", time.Hour, 15*time.Minute)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	s := newSigner()
	sub := uuid.New()

	raw, err := s.Sign(sub, UsageClient)
	require.NoError(t, err)

	claims, err := s.Verify(raw, UsageClient)
	require.NoError(t, err)

	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, sub, got)
	assert.Equal(t, UsageClient, claims.Usage)
	assert.NotEmpty(t, claims.ID)
}

func TestVerifyRejectsWrongUsage(t *testing.T) {
	s := newSigner()

	raw, err := s.Sign(uuid.New(), UsageResetPassword)
	require.NoError(t, err)

	_, err = s.Verify(raw, UsageClient)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify(raw, UsageResetPassword)
	assert.NoError(t, err)
}

func TestVerifyRejectsExpired(t *testing.T) {
	s := newSigner()
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	raw, err := s.Sign(uuid.New(), UsageClient)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(raw, UsageClient)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsFutureIssuedAt(t *testing.T) {
	s := newSigner()
	s.now = func() time.Time { return time.Now().Add(time.Hour) }

	raw, err := s.Sign(uuid.New(), UsageClient)
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.Verify(raw, UsageClient)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherSecretAndMethod(t *testing.T) {
	s := newSigner()

	other := NewSigner("other-secret", time.Hour, time.Hour)
	raw, err := other.Sign(uuid.New(), UsageClient)
	require.NoError(t, err)

	_, err = s.Verify(raw, UsageClient)
	assert.ErrorIs(t, err, ErrInvalidToken)

	claims := Claims{
		Usage: UsageClient,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.Verify(hs512, UsageClient)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformedSubject(t *testing.T) {
	s := newSigner()

	claims := Claims{
		Usage: UsageClient,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.Verify(raw, UsageClient)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
