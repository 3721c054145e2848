package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AcceptAppointment struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics Recorder
	log     *zap.Logger
}

func NewAcceptAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics Recorder,
	log *zap.Logger,
) *AcceptAppointment {
	return &AcceptAppointment{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		log:     log.With(zap.String("usecase", "accept_appointment")),
	}
}

func (uc *AcceptAppointment) Execute(
	ctx context.Context,
	caller access.Identity,
	id uuid.UUID,
) (*models.Appointment, error) {

	if err := access.CanAccept(caller); err != nil {
		return nil, err
	}

	ap, err := load(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if err := domain.CanAcceptSlot(ap); err != nil {
		return nil, err
	}

	// The guarded write decides concurrent accepts: only one matches.
	ok, err := uc.repo.AssignClient(ctx, ap.ID, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("accept appointment: %w", err)
	}
	if !ok {
		return nil, httperr.BadRequest("already_accepted", "appointment already accepted")
	}

	accepted, err := load(ctx, uc.repo, ap.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(event(caller, accepted, "accepted", nil))
	uc.metrics.AppointmentAction("accepted")
	uc.log.Info("appointment accepted",
		zap.String("appointment_id", accepted.ID.String()),
		zap.String("client_id", caller.UserID.String()),
	)

	return accepted, nil
}
