package models

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
)

type Barbershop struct {
	Base

	OwnerID uuid.UUID `gorm:"type:uuid;not null;index" json:"ownerId"`
	Owner   *User     `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name        string           `gorm:"size:100;not null" json:"name"`
	Description string           `gorm:"size:255" json:"description"`
	Phone       string           `gorm:"size:20" json:"phone"`
	Address     string           `gorm:"size:255" json:"address"`
	Status      lifecycle.Status `gorm:"size:20;not null;default:'enabled';index" json:"status"`
}
