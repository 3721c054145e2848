package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// CancelAppointment releases a slot held by the caller. The slot keeps its
// status and becomes available again.
type CancelAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics Recorder
	log     *zap.Logger
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics Recorder,
	log *zap.Logger,
) *CancelAppointment {
	return &CancelAppointment{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		log:     log.With(zap.String("usecase", "cancel_appointment")),
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	caller access.Identity,
	id uuid.UUID,
) (*models.Appointment, error) {

	ap, err := load(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := access.CanCancel(caller, ap.ClientID); err != nil {
		return nil, err
	}

	ok, err := uc.repo.ReleaseClient(ctx, ap.ID, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("cancel appointment: %w", err)
	}
	if !ok {
		// Released concurrently by another request.
		return nil, access.CanCancel(caller, nil)
	}

	canceled, err := load(ctx, uc.repo, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(event(caller, canceled, "canceled", nil))
	uc.metrics.AppointmentAction("canceled")
	uc.log.Info("appointment canceled",
		zap.String("appointment_id", canceled.ID.String()),
		zap.String("client_id", caller.UserID.String()),
	)

	return canceled, nil
}
