// Package access decides whether an authenticated caller may act on a shop,
// a service or an appointment. Every rejection is a 401 business error.
package access

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

// Identity is the resolved caller: the user and, when they manage one, their
// active (enabled or disabled) shop.
type Identity struct {
	UserID uuid.UUID
	ShopID *uuid.UUID
}

func (id Identity) HasShop() bool {
	return id.ShopID != nil
}

func RequireShop(id Identity) error {
	if !id.HasShop() {
		return httperr.Unauthorized("shop_required", "caller does not manage a barbershop")
	}
	return nil
}

func CanManageProvider(id Identity, providerID uuid.UUID) error {
	if err := RequireShop(id); err != nil {
		return err
	}
	if *id.ShopID != providerID {
		return httperr.Unauthorized("not_owner", "barbershop does not own this resource")
	}
	return nil
}

// CanAccept rejects shop identities: a shop cannot book as a client.
func CanAccept(id Identity) error {
	if id.HasShop() {
		return httperr.Unauthorized("shop_cannot_accept", "barbershop accounts cannot accept appointments")
	}
	return nil
}

func CanCancel(id Identity, clientID *uuid.UUID) error {
	if clientID == nil || *clientID != id.UserID {
		return httperr.Unauthorized("not_client", "only the accepting client can cancel this appointment")
	}
	return nil
}

// CanDiscuss allows the accepting client and the provider shop.
func CanDiscuss(id Identity, providerID uuid.UUID, clientID *uuid.UUID) error {
	if clientID != nil && *clientID == id.UserID {
		return nil
	}
	if id.HasShop() && *id.ShopID == providerID {
		return nil
	}
	return httperr.Unauthorized("not_participant", "caller is not part of this appointment")
}
