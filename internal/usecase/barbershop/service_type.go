package barbershop

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ServiceTypeInput struct {
	Title       string
	Description string
}

// ===============================
// Create
// ===============================

type CreateServiceType struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateServiceType(repo domain.Repository, audit *audit.Dispatcher) *CreateServiceType {
	return &CreateServiceType{repo: repo, audit: audit}
}

func (uc *CreateServiceType) Execute(ctx context.Context, caller access.Identity, in ServiceTypeInput) (*models.ServiceType, error) {
	if err := access.RequireShop(caller); err != nil {
		return nil, err
	}

	title, err := requireText("title", in.Title, 2, 100)
	if err != nil {
		return nil, err
	}
	description, err := optionalText("description", in.Description, 255)
	if err != nil {
		return nil, err
	}

	st := &models.ServiceType{Title: title, Description: description}
	if err := uc.repo.CreateServiceType(ctx, st); err != nil {
		if errors.Is(err, domain.ErrTitleTaken) {
			return nil, httperr.BadRequest("service_type_exists", "a service type with this title already exists")
		}
		return nil, fmt.Errorf("create service type: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: caller.ShopID,
		UserID:       &caller.UserID,
		Action:       "service_type_created",
		Entity:       "service_type",
		EntityID:     &st.ID,
		Metadata:     map[string]any{"title": st.Title},
	})
	return st, nil
}

// ===============================
// Reads
// ===============================

type GetServiceType struct {
	repo domain.Repository
}

func NewGetServiceType(repo domain.Repository) *GetServiceType {
	return &GetServiceType{repo: repo}
}

func (uc *GetServiceType) Execute(ctx context.Context, id uuid.UUID) (*models.ServiceType, error) {
	st, err := uc.repo.GetServiceType(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errServiceTypeNotFound, "load service type")
	}
	return st, nil
}

type ListServiceTypes struct {
	repo domain.Repository
}

func NewListServiceTypes(repo domain.Repository) *ListServiceTypes {
	return &ListServiceTypes{repo: repo}
}

func (uc *ListServiceTypes) Execute(ctx context.Context) ([]models.ServiceType, error) {
	types, err := uc.repo.ListServiceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list service types: %w", err)
	}
	return types, nil
}

// ===============================
// Logo
// ===============================

// ObjectStore is satisfied by storage.S3Store.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// Transcoder turns an uploaded image into the stored logo bytes.
type Transcoder func(r io.Reader) ([]byte, error)

type UploadLogo struct {
	repo        domain.Repository
	store       ObjectStore
	transcode   Transcoder
	contentType string
	audit       *audit.Dispatcher
	log         *zap.Logger
}

// NewUploadLogo accepts a nil store; uploads are then refused.
func NewUploadLogo(
	repo domain.Repository,
	store ObjectStore,
	transcode Transcoder,
	contentType string,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UploadLogo {
	return &UploadLogo{
		repo:        repo,
		store:       store,
		transcode:   transcode,
		contentType: contentType,
		audit:       audit,
		log:         log.With(zap.String("usecase", "upload_logo")),
	}
}

func (uc *UploadLogo) Execute(ctx context.Context, caller access.Identity, id uuid.UUID, image io.Reader) (*models.ServiceType, error) {
	if err := access.RequireShop(caller); err != nil {
		return nil, err
	}
	if uc.store == nil {
		return nil, httperr.BadRequest("uploads_disabled", "logo upload is not configured")
	}

	st, err := uc.repo.GetServiceType(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, errServiceTypeNotFound, "load service type")
	}

	body, err := uc.transcode(image)
	if err != nil {
		uc.log.Debug("logo rejected", zap.Error(err))
		return nil, httperr.BadRequest("invalid_image", "logo must be a png, jpeg, gif or webp image")
	}

	url, err := uc.store.Put(ctx, "service-types/"+st.ID.String()+".webp", body, uc.contentType)
	if err != nil {
		return nil, fmt.Errorf("upload logo: %w", err)
	}

	st.LogoURL = url
	if err := uc.repo.SaveServiceType(ctx, st); err != nil {
		return nil, fmt.Errorf("save service type: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: caller.ShopID,
		UserID:       &caller.UserID,
		Action:       "service_type_logo_uploaded",
		Entity:       "service_type",
		EntityID:     &st.ID,
		Metadata:     map[string]any{"url": url},
	})
	return st, nil
}
