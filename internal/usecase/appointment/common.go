package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var (
	errAppointmentNotFound = httperr.NotFound("appointment_not_found", "appointment not found")
	errServiceNotFound     = httperr.NotFound("service_not_found", "service not found")
)

// Recorder counts appointment actions. *metrics.Metrics implements it.
type Recorder interface {
	AppointmentAction(action string)
}

func load(ctx context.Context, repo domain.Repository, id uuid.UUID) (*models.Appointment, error) {
	ap, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errAppointmentNotFound
		}
		return nil, fmt.Errorf("load appointment: %w", err)
	}
	return ap, nil
}

// loadOwned returns a visible appointment whose service belongs to the caller's shop.
func loadOwned(ctx context.Context, repo domain.Repository, caller access.Identity, id uuid.UUID) (*models.Appointment, error) {
	if err := access.RequireShop(caller); err != nil {
		return nil, err
	}

	ap, err := load(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if ap.Service == nil {
		return nil, errServiceNotFound
	}
	if err := access.CanManageProvider(caller, ap.Service.BarbershopID); err != nil {
		return nil, err
	}
	return ap, nil
}

func event(caller access.Identity, ap *models.Appointment, action string, meta any) audit.Event {
	ev := audit.Event{
		UserID:   &caller.UserID,
		Action:   "appointment_" + action,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: meta,
	}
	if ap.Service != nil {
		ev.BarbershopID = &ap.Service.BarbershopID
	}
	return ev
}
