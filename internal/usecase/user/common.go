package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	"github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/token"
)

var (
	errInvalidCredentials = httperr.Unauthorized("invalid_credentials", "invalid credentials")
	errInvalidToken       = httperr.Unauthorized("invalid_token", "invalid or expired token")
)

// AuthResult is returned by Register and Authenticate.
type AuthResult struct {
	User  *models.User
	Token string
	Shop  *models.Barbershop
}

// activeShop returns the owner's enabled or disabled shop, or nil.
func activeShop(ctx context.Context, shops barbershop.Repository, ownerID uuid.UUID) (*models.Barbershop, error) {
	shop, err := shops.FindActiveShopByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, barbershop.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find active shop: %w", err)
	}
	return shop, nil
}

// enabledUser loads a user that may still sign in.
func enabledUser(ctx context.Context, users domain.Repository, id uuid.UUID) (*models.User, error) {
	u, err := users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidToken
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u.Status != lifecycle.StatusEnabled {
		return nil, errInvalidToken
	}
	return u, nil
}

// ===============================
// Identity resolution
// ===============================

// ResolveIdentity turns a session token into the caller's user and shop.
type ResolveIdentity struct {
	users  domain.Repository
	shops  barbershop.Repository
	signer *token.Signer
}

func NewResolveIdentity(users domain.Repository, shops barbershop.Repository, signer *token.Signer) *ResolveIdentity {
	return &ResolveIdentity{users: users, shops: shops, signer: signer}
}

func (uc *ResolveIdentity) Execute(ctx context.Context, raw string) (*models.User, access.Identity, error) {
	claims, err := uc.signer.Verify(raw, token.UsageClient)
	if err != nil {
		return nil, access.Identity{}, errInvalidToken
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, access.Identity{}, errInvalidToken
	}

	u, err := enabledUser(ctx, uc.users, userID)
	if err != nil {
		return nil, access.Identity{}, err
	}

	id := access.Identity{UserID: u.ID}
	shop, err := activeShop(ctx, uc.shops, u.ID)
	if err != nil {
		return nil, access.Identity{}, err
	}
	if shop != nil {
		id.ShopID = &shop.ID
	}
	return u, id, nil
}
