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
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID    uuid.UUID
	Title        *string
	Observations *string
	StartsAt     time.Time
	EndsAt       time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics Recorder
	log     *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics Recorder,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		log:     log.With(zap.String("usecase", "create_appointment")),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	caller access.Identity,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if err := access.RequireShop(caller); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Service must be visible and owned by the caller
	// --------------------------------------------------
	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errServiceNotFound
		}
		return nil, fmt.Errorf("load service: %w", err)
	}
	if !lifecycle.IsVisible(svc.Status) {
		return nil, errServiceNotFound
	}
	if err := access.CanManageProvider(caller, svc.BarbershopID); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Period
	// --------------------------------------------------
	if err := domain.ValidateRange(in.StartsAt, in.EndsAt); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ServiceID:    svc.ID,
		Title:        in.Title,
		Observations: in.Observations,
		StartsAt:     in.StartsAt.UTC(),
		EndsAt:       in.EndsAt.UTC(),
		Status:       lifecycle.StatusEnabled,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	created, err := load(ctx, uc.repo, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(event(caller, created, "created", map[string]any{
		"serviceId": svc.ID,
		"startsAt":  created.StartsAt,
		"endsAt":    created.EndsAt,
	}))
	uc.metrics.AppointmentAction("created")
	uc.log.Debug("appointment created", zap.String("appointment_id", created.ID.String()))

	return created, nil
}
