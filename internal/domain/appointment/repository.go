package appointment

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var ErrNotFound = errors.New("appointment not found")

type Repository interface {
	// -------- Service --------
	// GetService returns the service with its provider, whatever its status.
	GetService(
		ctx context.Context,
		id uuid.UUID,
	) (*models.BarbershopService, error)

	// -------- Appointment --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Get returns a visible appointment with service, provider, type and client loaded.
	Get(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	List(
		ctx context.Context,
		filter Filter,
	) ([]models.Appointment, error)

	// Update persists the shop-owned columns. It never writes the client,
	// which only AssignClient and ReleaseClient change.
	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// Delete marks the slot deleted only while no client holds it. It
	// reports false when the guard did not match.
	Delete(
		ctx context.Context,
		id uuid.UUID,
	) (bool, error)

	// -------- Acceptance --------
	// AssignClient sets the client only while none is set and the slot is
	// enabled. It reports false when the guard did not match.
	AssignClient(
		ctx context.Context,
		id uuid.UUID,
		clientID uuid.UUID,
	) (bool, error)

	// ReleaseClient clears client and observations only while clientID holds
	// the slot.
	ReleaseClient(
		ctx context.Context,
		id uuid.UUID,
		clientID uuid.UUID,
	) (bool, error)

	// -------- Messages --------
	CreateMessage(
		ctx context.Context,
		msg *models.AppointmentMessage,
	) error

	ListMessages(
		ctx context.Context,
		appointmentID uuid.UUID,
	) ([]models.AppointmentMessage, error)
}
