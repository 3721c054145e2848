package barbershop

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ShopInput holds profile fields. Nil fields are left unchanged on update.
type ShopInput struct {
	Name        *string
	Description *string
	Phone       *string
	Address     *string
}

func (in ShopInput) apply(shop *models.Barbershop) error {
	if in.Name != nil {
		v, err := requireText("name", *in.Name, 2, 100)
		if err != nil {
			return err
		}
		shop.Name = v
	}
	if in.Description != nil {
		v, err := optionalText("description", *in.Description, 255)
		if err != nil {
			return err
		}
		shop.Description = v
	}
	if in.Phone != nil {
		v, err := optionalText("phone", *in.Phone, 20)
		if err != nil {
			return err
		}
		shop.Phone = v
	}
	if in.Address != nil {
		v, err := optionalText("address", *in.Address, 255)
		if err != nil {
			return err
		}
		shop.Address = v
	}
	return nil
}

func shopEvent(caller access.Identity, shop *models.Barbershop, action string) audit.Event {
	return audit.Event{
		BarbershopID: &shop.ID,
		UserID:       &caller.UserID,
		Action:       "barbershop_" + action,
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	}
}

// ===============================
// Create (upsert on the owner's active shop)
// ===============================

type CreateShopResult struct {
	Shop    *models.Barbershop
	Created bool
}

type CreateShop struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewCreateShop(repo domain.Repository, audit *audit.Dispatcher, log *zap.Logger) *CreateShop {
	return &CreateShop{
		repo:  repo,
		audit: audit,
		log:   log.With(zap.String("usecase", "create_shop")),
	}
}

// Execute updates the caller's enabled or disabled shop in place when one
// exists, otherwise inserts a new one. Deleted shops never block creation.
func (uc *CreateShop) Execute(ctx context.Context, caller access.Identity, in ShopInput) (*CreateShopResult, error) {
	existing, err := uc.repo.FindActiveShopByOwner(ctx, caller.UserID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("find active shop: %w", err)
	}

	if existing != nil {
		if err := in.apply(existing); err != nil {
			return nil, err
		}
		if err := uc.repo.SaveShop(ctx, existing); err != nil {
			return nil, fmt.Errorf("save shop: %w", err)
		}
		uc.audit.Dispatch(shopEvent(caller, existing, "updated"))
		return &CreateShopResult{Shop: existing, Created: false}, nil
	}

	if in.Name == nil {
		empty := ""
		in.Name = &empty
	}

	shop := &models.Barbershop{
		OwnerID: caller.UserID,
		Status:  lifecycle.StatusEnabled,
	}
	if err := in.apply(shop); err != nil {
		return nil, err
	}
	if err := uc.repo.CreateShop(ctx, shop); err != nil {
		return nil, fmt.Errorf("create shop: %w", err)
	}

	uc.audit.Dispatch(shopEvent(caller, shop, "created"))
	uc.log.Info("barbershop created",
		zap.String("barbershop_id", shop.ID.String()),
		zap.String("owner_id", caller.UserID.String()),
	)

	return &CreateShopResult{Shop: shop, Created: true}, nil
}

// ===============================
// Owner side
// ===============================

func loadOwnShop(ctx context.Context, repo domain.Repository, caller access.Identity) (*models.Barbershop, error) {
	if err := access.RequireShop(caller); err != nil {
		return nil, err
	}
	shop, err := repo.GetShop(ctx, *caller.ShopID)
	if err != nil {
		return nil, mapNotFound(err, errShopNotFound, "load shop")
	}
	return shop, nil
}

type GetMyShop struct {
	repo domain.Repository
}

func NewGetMyShop(repo domain.Repository) *GetMyShop {
	return &GetMyShop{repo: repo}
}

func (uc *GetMyShop) Execute(ctx context.Context, caller access.Identity) (*models.Barbershop, error) {
	return loadOwnShop(ctx, uc.repo, caller)
}

type UpdateShop struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateShop(repo domain.Repository, audit *audit.Dispatcher) *UpdateShop {
	return &UpdateShop{repo: repo, audit: audit}
}

func (uc *UpdateShop) Execute(ctx context.Context, caller access.Identity, in ShopInput) (*models.Barbershop, error) {
	shop, err := loadOwnShop(ctx, uc.repo, caller)
	if err != nil {
		return nil, err
	}
	if err := in.apply(shop); err != nil {
		return nil, err
	}
	if err := uc.repo.SaveShop(ctx, shop); err != nil {
		return nil, fmt.Errorf("save shop: %w", err)
	}

	uc.audit.Dispatch(shopEvent(caller, shop, "updated"))
	return shop, nil
}

type SetShopStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetShopStatus(repo domain.Repository, audit *audit.Dispatcher) *SetShopStatus {
	return &SetShopStatus{repo: repo, audit: audit}
}

func (uc *SetShopStatus) Execute(ctx context.Context, caller access.Identity, action lifecycle.Action) (*models.Barbershop, error) {
	shop, err := loadOwnShop(ctx, uc.repo, caller)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.Transition(shop.Status, action)
	if err != nil {
		return nil, err
	}
	shop.Status = next

	if err := uc.repo.SaveShop(ctx, shop); err != nil {
		return nil, fmt.Errorf("save shop: %w", err)
	}

	uc.audit.Dispatch(shopEvent(caller, shop, pastTense[action]))
	return shop, nil
}

// ===============================
// Public side
// ===============================

type GetShop struct {
	repo domain.Repository
}

func NewGetShop(repo domain.Repository) *GetShop {
	return &GetShop{repo: repo}
}

func (uc *GetShop) Execute(ctx context.Context, id uuid.UUID) (*models.Barbershop, error) {
	shop, err := uc.repo.GetShop(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errShopNotFound, "load shop")
	}
	return shop, nil
}

type ListShops struct {
	repo domain.Repository
}

func NewListShops(repo domain.Repository) *ListShops {
	return &ListShops{repo: repo}
}

func (uc *ListShops) Execute(ctx context.Context, filter domain.ShopFilter) ([]models.Barbershop, error) {
	shops, err := uc.repo.ListShops(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list shops: %w", err)
	}
	return shops, nil
}
