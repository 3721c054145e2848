package barbershop

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceInput struct {
	ServiceTypeID *uuid.UUID
	Price         *float64
}

func serviceEvent(caller access.Identity, svc *models.BarbershopService, action string) audit.Event {
	return audit.Event{
		BarbershopID: &svc.BarbershopID,
		UserID:       &caller.UserID,
		Action:       "service_" + action,
		Entity:       "service",
		EntityID:     &svc.ID,
		Metadata: map[string]any{
			"serviceTypeId": svc.ServiceTypeID,
			"price":         svc.Price,
		},
	}
}

func validatePrice(p float64) error {
	if p < 0 {
		return httperr.BadRequest("invalid_price", "price must not be negative")
	}
	return nil
}

func (uc *serviceBase) loadType(ctx context.Context, id uuid.UUID) (*models.ServiceType, error) {
	st, err := uc.repo.GetServiceType(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errServiceTypeNotFound, "load service type")
	}
	return st, nil
}

// loadOwned returns a visible service managed by the caller's shop.
func (uc *serviceBase) loadOwned(ctx context.Context, caller access.Identity, id uuid.UUID) (*models.BarbershopService, error) {
	if err := access.RequireShop(caller); err != nil {
		return nil, err
	}
	svc, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errServiceNotFound, "load service")
	}
	if err := access.CanManageProvider(caller, svc.BarbershopID); err != nil {
		return nil, err
	}
	return svc, nil
}

type serviceBase struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

// ===============================
// Create
// ===============================

type CreateService struct {
	serviceBase
}

func NewCreateService(repo domain.Repository, audit *audit.Dispatcher) *CreateService {
	return &CreateService{serviceBase{repo: repo, audit: audit}}
}

func (uc *CreateService) Execute(ctx context.Context, caller access.Identity, in ServiceInput) (*models.BarbershopService, error) {
	if err := access.RequireShop(caller); err != nil {
		return nil, err
	}
	if in.ServiceTypeID == nil {
		return nil, httperr.BadRequest("invalid_service_type", "serviceTypeId is required")
	}
	if in.Price == nil {
		return nil, httperr.BadRequest("invalid_price", "price is required")
	}
	if err := validatePrice(*in.Price); err != nil {
		return nil, err
	}

	st, err := uc.loadType(ctx, *in.ServiceTypeID)
	if err != nil {
		return nil, err
	}

	svc := &models.BarbershopService{
		BarbershopID:  *caller.ShopID,
		ServiceTypeID: st.ID,
		Price:         *in.Price,
		Status:        lifecycle.StatusEnabled,
	}
	if err := uc.repo.CreateService(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	created, err := uc.repo.GetService(ctx, svc.ID)
	if err != nil {
		return nil, mapNotFound(err, errServiceNotFound, "load service")
	}

	uc.audit.Dispatch(serviceEvent(caller, created, "created"))
	return created, nil
}

// ===============================
// Update
// ===============================

type UpdateService struct {
	serviceBase
}

func NewUpdateService(repo domain.Repository, audit *audit.Dispatcher) *UpdateService {
	return &UpdateService{serviceBase{repo: repo, audit: audit}}
}

func (uc *UpdateService) Execute(ctx context.Context, caller access.Identity, id uuid.UUID, in ServiceInput) (*models.BarbershopService, error) {
	svc, err := uc.loadOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if in.ServiceTypeID != nil {
		st, err := uc.loadType(ctx, *in.ServiceTypeID)
		if err != nil {
			return nil, err
		}
		svc.ServiceTypeID = st.ID
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		svc.Price = *in.Price
	}

	if err := uc.repo.SaveService(ctx, svc); err != nil {
		return nil, fmt.Errorf("save service: %w", err)
	}

	updated, err := uc.repo.GetService(ctx, svc.ID)
	if err != nil {
		return nil, mapNotFound(err, errServiceNotFound, "load service")
	}

	uc.audit.Dispatch(serviceEvent(caller, updated, "updated"))
	return updated, nil
}

// ===============================
// Enable / Disable / Delete
// ===============================

type SetServiceStatus struct {
	serviceBase
}

func NewSetServiceStatus(repo domain.Repository, audit *audit.Dispatcher) *SetServiceStatus {
	return &SetServiceStatus{serviceBase{repo: repo, audit: audit}}
}

func (uc *SetServiceStatus) Execute(ctx context.Context, caller access.Identity, id uuid.UUID, action lifecycle.Action) (*models.BarbershopService, error) {
	svc, err := uc.loadOwned(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.Transition(svc.Status, action)
	if err != nil {
		return nil, err
	}
	svc.Status = next

	if err := uc.repo.SaveService(ctx, svc); err != nil {
		return nil, fmt.Errorf("save service: %w", err)
	}

	uc.audit.Dispatch(serviceEvent(caller, svc, pastTense[action]))
	return svc, nil
}

// ===============================
// Reads
// ===============================

type GetService struct {
	repo domain.Repository
}

func NewGetService(repo domain.Repository) *GetService {
	return &GetService{repo: repo}
}

func (uc *GetService) Execute(ctx context.Context, id uuid.UUID) (*models.BarbershopService, error) {
	svc, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errServiceNotFound, "load service")
	}
	return svc, nil
}

// GetOwnedService is the shop-side read of a single service.
type GetOwnedService struct {
	serviceBase
}

func NewGetOwnedService(repo domain.Repository) *GetOwnedService {
	return &GetOwnedService{serviceBase{repo: repo}}
}

func (uc *GetOwnedService) Execute(ctx context.Context, caller access.Identity, id uuid.UUID) (*models.BarbershopService, error) {
	return uc.loadOwned(ctx, caller, id)
}

type ListServices struct {
	repo domain.Repository
}

func NewListServices(repo domain.Repository) *ListServices {
	return &ListServices{repo: repo}
}

func (uc *ListServices) Execute(ctx context.Context, filter domain.ServiceFilter) ([]models.BarbershopService, error) {
	services, err := uc.repo.ListServices(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return services, nil
}
