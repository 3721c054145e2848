package appointment

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ===============================
// Domain Rules
// ===============================

func ValidateRange(startsAt, endsAt time.Time) error {
	if startsAt.IsZero() || endsAt.IsZero() {
		return httperr.BadRequest("invalid_period", "startsAt and endsAt are required")
	}
	if !endsAt.After(startsAt) {
		return httperr.BadRequest("invalid_period", "endsAt must be after startsAt")
	}
	return nil
}

// ErrAcceptedDelete refuses deleting a slot a client holds.
var ErrAcceptedDelete = httperr.BadRequest("appointment_accepted", "appointment has a client, it must be canceled before deletion")

// Apply runs an owner-side status change. Deleting an accepted slot is
// refused until the client cancels.
func Apply(ap *models.Appointment, action lifecycle.Action) error {
	if action == lifecycle.ActionDelete && ap.Accepted() {
		return ErrAcceptedDelete
	}

	next, err := lifecycle.Transition(ap.Status, action)
	if err != nil {
		return err
	}
	ap.Status = next
	return nil
}

func CanAcceptSlot(ap *models.Appointment) error {
	if ap.Accepted() {
		return httperr.BadRequest("already_accepted", "appointment already accepted")
	}
	if ap.Status != lifecycle.StatusEnabled {
		return httperr.BadRequest("appointment_unavailable", "appointment is not available")
	}
	return nil
}
