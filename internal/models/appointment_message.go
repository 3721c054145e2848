package models

import "github.com/google/uuid"

type AppointmentMessage struct {
	Base

	AppointmentID uuid.UUID    `gorm:"type:uuid;not null;index" json:"appointmentId"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	AuthorID uuid.UUID `gorm:"type:uuid;not null" json:"authorId"`
	Author   *User     `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"author,omitempty"`

	Body string `gorm:"type:text;not null" json:"body"`
}
