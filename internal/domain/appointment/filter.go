package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Filter narrows List. Nil fields do not constrain. ProviderID and
// ServiceTypeID intersect: a slot must match both when both are set.
type Filter struct {
	Available *bool
	From      *time.Time
	To        *time.Time

	ServiceID     *uuid.UUID
	ProviderID    *uuid.UUID
	ServiceTypeID *uuid.UUID
	ClientID      *uuid.UUID
}

// MatchesService reports whether a service satisfies the provider and type
// constraints. A deleted service, or one whose shop is deleted, never matches.
func (f Filter) MatchesService(svc *models.BarbershopService) bool {
	if svc == nil || svc.Status == lifecycle.StatusDeleted {
		return false
	}
	if svc.Provider != nil && svc.Provider.Status == lifecycle.StatusDeleted {
		return false
	}
	if f.ProviderID != nil && svc.BarbershopID != *f.ProviderID {
		return false
	}
	if f.ServiceTypeID != nil && svc.ServiceTypeID != *f.ServiceTypeID {
		return false
	}
	return true
}

// Matches evaluates the whole filter against an appointment whose Service is
// loaded.
func (f Filter) Matches(ap *models.Appointment) bool {
	if !lifecycle.IsVisible(ap.Status) {
		return false
	}
	if f.Available != nil && *f.Available == ap.Accepted() {
		return false
	}
	if f.From != nil && ap.StartsAt.Before(*f.From) {
		return false
	}
	if f.To != nil && ap.StartsAt.After(*f.To) {
		return false
	}
	if f.ServiceID != nil && ap.ServiceID != *f.ServiceID {
		return false
	}
	if f.ClientID != nil && (ap.ClientID == nil || *ap.ClientID != *f.ClientID) {
		return false
	}
	return f.MatchesService(ap.Service)
}
