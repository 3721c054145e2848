package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// UpdateAppointmentInput carries only the fields the caller sent.
type UpdateAppointmentInput struct {
	ServiceID    *uuid.UUID
	Title        *string
	Observations *string
	StartsAt     *time.Time
	EndsAt       *time.Time
}

type UpdateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics Recorder
	log     *zap.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics Recorder,
	log *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		log:     log.With(zap.String("usecase", "update_appointment")),
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	caller access.Identity,
	id uuid.UUID,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := loadOwned(ctx, uc.repo, caller, id)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Service swap stays within the same provider
	// --------------------------------------------------
	if in.ServiceID != nil && *in.ServiceID != ap.ServiceID {
		svc, err := uc.repo.GetService(ctx, *in.ServiceID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, errServiceNotFound
			}
			return nil, fmt.Errorf("load service: %w", err)
		}
		if !lifecycle.IsVisible(svc.Status) {
			return nil, errServiceNotFound
		}
		if svc.BarbershopID != ap.Service.BarbershopID {
			return nil, httperr.BadRequest("service_other_provider", "service belongs to another barbershop")
		}
		ap.ServiceID = svc.ID
	}

	if in.Title != nil {
		ap.Title = in.Title
	}
	if in.Observations != nil {
		ap.Observations = in.Observations
	}
	if in.StartsAt != nil {
		ap.StartsAt = in.StartsAt.UTC()
	}
	if in.EndsAt != nil {
		ap.EndsAt = in.EndsAt.UTC()
	}

	if err := domain.ValidateRange(ap.StartsAt, ap.EndsAt); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	updated, err := load(ctx, uc.repo, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(event(caller, updated, "updated", nil))
	uc.metrics.AppointmentAction("updated")

	return updated, nil
}
