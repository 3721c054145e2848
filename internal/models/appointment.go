package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
)

type Appointment struct {
	Base

	ServiceID uuid.UUID          `gorm:"type:uuid;not null;index" json:"serviceId"`
	Service   *BarbershopService `gorm:"foreignKey:ServiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"service,omitempty"`

	Title        *string `gorm:"size:100" json:"title"`
	Observations *string `gorm:"size:255" json:"observations"`

	StartsAt time.Time `gorm:"type:timestamptz;not null;index" json:"startsAt"`
	EndsAt   time.Time `gorm:"type:timestamptz;not null" json:"endsAt"`

	Status lifecycle.Status `gorm:"size:20;not null;default:'enabled';index" json:"status"`

	ClientID *uuid.UUID `gorm:"type:uuid;index" json:"clientId"`
	Client   *User      `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`
}

// Accepted reports whether a client holds the slot.
func (a *Appointment) Accepted() bool {
	return a.ClientID != nil
}
