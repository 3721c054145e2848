package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/security"
	"github.com/BruksfildServices01/barber-booking/internal/token"
)

type AuthenticateUser struct {
	users  domain.Repository
	shops  barbershop.Repository
	signer *token.Signer
}

func NewAuthenticateUser(users domain.Repository, shops barbershop.Repository, signer *token.Signer) *AuthenticateUser {
	return &AuthenticateUser{users: users, shops: shops, signer: signer}
}

func (uc *AuthenticateUser) Execute(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := uc.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if u.Status != lifecycle.StatusEnabled || !security.CheckPassword(u.PasswordHash, password) {
		return nil, errInvalidCredentials
	}

	tok, err := uc.signer.Sign(u.ID, token.UsageClient)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	shop, err := activeShop(ctx, uc.shops, u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: u, Token: tok, Shop: shop}, nil
}

// ValidateToken answers whether a session token still maps to an enabled user.
type ValidateToken struct {
	resolve *ResolveIdentity
}

func NewValidateToken(resolve *ResolveIdentity) *ValidateToken {
	return &ValidateToken{resolve: resolve}
}

func (uc *ValidateToken) Execute(ctx context.Context, raw string) (*models.User, error) {
	u, _, err := uc.resolve.Execute(ctx, raw)
	return u, err
}
