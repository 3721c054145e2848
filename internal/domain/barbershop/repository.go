package barbershop

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrTitleTaken = errors.New("service type title already exists")
)

type ShopFilter struct {
	Query string
}

type ServiceFilter struct {
	ProviderID    *uuid.UUID
	ServiceTypeID *uuid.UUID
}

type Repository interface {
	// -------- Barbershop --------
	CreateShop(ctx context.Context, shop *models.Barbershop) error
	SaveShop(ctx context.Context, shop *models.Barbershop) error
	// GetShop returns a visible shop.
	GetShop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error)
	// FindActiveShopByOwner returns the owner's enabled or disabled shop.
	FindActiveShopByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Barbershop, error)
	ListShops(ctx context.Context, filter ShopFilter) ([]models.Barbershop, error)

	// -------- Service type --------
	CreateServiceType(ctx context.Context, st *models.ServiceType) error
	SaveServiceType(ctx context.Context, st *models.ServiceType) error
	GetServiceType(ctx context.Context, id uuid.UUID) (*models.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]models.ServiceType, error)

	// -------- Service --------
	CreateService(ctx context.Context, svc *models.BarbershopService) error
	// SaveService persists the service's own columns.
	SaveService(ctx context.Context, svc *models.BarbershopService) error
	// GetService returns a visible service with provider and type loaded.
	GetService(ctx context.Context, id uuid.UUID) (*models.BarbershopService, error)
	ListServices(ctx context.Context, filter ServiceFilter) ([]models.BarbershopService, error)
}
