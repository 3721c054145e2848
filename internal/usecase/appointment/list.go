package appointment

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Appointment, error) {

	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, httperr.BadRequest("invalid_period", "to must not be before from")
	}

	apps, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return apps, nil
}
