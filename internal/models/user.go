package models

import "github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"

type User struct {
	Base

	Name         string           `gorm:"size:100;not null" json:"name"`
	Email        string           `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string           `gorm:"size:20" json:"phone"`
	PasswordHash string           `gorm:"size:255;not null" json:"-"`
	Status       lifecycle.Status `gorm:"size:20;not null;default:'enabled'" json:"status"`
}
