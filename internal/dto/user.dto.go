package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UserDTO struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Status    lifecycle.Status `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
}

func User(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}

type MessageDTO struct {
	ID        uuid.UUID  `json:"id"`
	Body      string     `json:"body"`
	Author    *ClientDTO `json:"author"`
	CreatedAt time.Time  `json:"createdAt"`
}

func Messages(list []models.AppointmentMessage) []MessageDTO {
	out := make([]MessageDTO, 0, len(list))
	for _, m := range list {
		out = append(out, Message(&m))
	}
	return out
}

func Message(m *models.AppointmentMessage) MessageDTO {
	author := &ClientDTO{ID: m.AuthorID}
	if m.Author != nil {
		author.Name = m.Author.Name
	}
	return MessageDTO{ID: m.ID, Body: m.Body, Author: author, CreatedAt: m.CreatedAt}
}
