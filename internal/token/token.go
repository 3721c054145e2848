// Package token signs and verifies the HS256 tokens handed to clients. Every
// token carries a usage tag so a password-reset token cannot open a session.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Usage string

const (
	UsageClient        Usage = "client"
	UsageResetPassword Usage = "resetPassword"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Usage Usage `json:"usage"`
	jwt.RegisteredClaims
}

// UserID returns the parsed sub claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.RegisteredClaims.Subject)
}

type Signer struct {
	secret []byte
	ttl    map[Usage]time.Duration
	now    func() time.Time
}

func NewSigner(secret string, sessionTTL, resetTTL time.Duration) *Signer {
	return &Signer{
		secret: []byte(secret),
		ttl: map[Usage]time.Duration{
			UsageClient:        sessionTTL,
			UsageResetPassword: resetTTL,
		},
		now: time.Now,
	}
}

func (s *Signer) Sign(subject uuid.UUID, usage Usage) (string, error) {
	ttl, ok := s.ttl[usage]
	if !ok {
		return "", errors.New("token: unknown usage " + string(usage))
	}

	now := s.now()
	claims := Claims{
		Usage: usage,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, method, expiry, issue time and usage. Every failure
// is reported as ErrInvalidToken.
func (s *Signer) Verify(raw string, expected Usage) (*Claims, error) {
	claims := &Claims{}

	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Usage != expected {
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
