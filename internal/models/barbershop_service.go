package models

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
)

type BarbershopService struct {
	Base

	BarbershopID uuid.UUID   `gorm:"type:uuid;not null;index" json:"providerId"`
	Provider     *Barbershop `gorm:"foreignKey:BarbershopID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"provider,omitempty"`

	ServiceTypeID uuid.UUID    `gorm:"type:uuid;not null;index" json:"serviceTypeId"`
	ServiceType   *ServiceType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"serviceType,omitempty"`

	Price  float64          `gorm:"type:decimal(10,2);not null" json:"price"`
	Status lifecycle.Status `gorm:"size:20;not null;default:'enabled';index" json:"status"`
}
