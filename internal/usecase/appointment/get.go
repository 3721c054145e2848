package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uuid.UUID) (*models.Appointment, error) {
	return load(ctx, uc.repo, id)
}

// GetOwnedAppointment is the shop-side read.
type GetOwnedAppointment struct {
	repo domain.Repository
}

func NewGetOwnedAppointment(repo domain.Repository) *GetOwnedAppointment {
	return &GetOwnedAppointment{repo: repo}
}

func (uc *GetOwnedAppointment) Execute(
	ctx context.Context,
	caller access.Identity,
	id uuid.UUID,
) (*models.Appointment, error) {
	return loadOwned(ctx, uc.repo, caller, id)
}
