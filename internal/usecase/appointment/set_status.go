package appointment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var actionNames = map[lifecycle.Action]string{
	lifecycle.ActionEnable:  "enabled",
	lifecycle.ActionDisable: "disabled",
	lifecycle.ActionDelete:  "deleted",
}

// SetAppointmentStatus enables, disables or deletes a slot on behalf of its shop.
type SetAppointmentStatus struct {
	repo    domain.Repository
	audit   *audit.Dispatcher
	metrics Recorder
	log     *zap.Logger
}

func NewSetAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	metrics Recorder,
	log *zap.Logger,
) *SetAppointmentStatus {
	return &SetAppointmentStatus{
		repo:    repo,
		audit:   audit,
		metrics: metrics,
		log:     log.With(zap.String("usecase", "set_appointment_status")),
	}
}

func (uc *SetAppointmentStatus) Execute(
	ctx context.Context,
	caller access.Identity,
	id uuid.UUID,
	action lifecycle.Action,
) (*models.Appointment, error) {

	ap, err := loadOwned(ctx, uc.repo, caller, id)
	if err != nil {
		return nil, err
	}

	previous := ap.Status
	if err := domain.Apply(ap, action); err != nil {
		return nil, err
	}

	if action == lifecycle.ActionDelete {
		// A client may have accepted since the read above.
		ok, err := uc.repo.Delete(ctx, ap.ID)
		if err != nil {
			return nil, fmt.Errorf("delete appointment: %w", err)
		}
		if !ok {
			return nil, domain.ErrAcceptedDelete
		}
	} else {
		if err := uc.repo.Update(ctx, ap); err != nil {
			return nil, fmt.Errorf("update appointment status: %w", err)
		}
		if ap, err = load(ctx, uc.repo, ap.ID); err != nil {
			return nil, err
		}
	}

	name := actionNames[action]
	uc.audit.Dispatch(event(caller, ap, name, map[string]any{
		"from": previous,
		"to":   ap.Status,
	}))
	uc.metrics.AppointmentAction(name)
	uc.log.Debug("appointment status changed",
		zap.String("appointment_id", ap.ID.String()),
		zap.String("status", string(ap.Status)),
	)

	return ap, nil
}
