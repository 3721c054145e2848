package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ProviderDTO struct {
	ID      uuid.UUID        `json:"id"`
	Name    string           `json:"name"`
	Phone   string           `json:"phone"`
	Address string           `json:"address"`
	Status  lifecycle.Status `json:"status"`
}

type ServiceTypeDTO struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logoUrl"`
}

type ServiceDTO struct {
	ID          uuid.UUID        `json:"id"`
	Price       float64          `json:"price"`
	Status      lifecycle.Status `json:"status"`
	Provider    *ProviderDTO     `json:"provider"`
	ServiceType *ServiceTypeDTO  `json:"serviceType"`
}

type ClientDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`
}

type AppointmentDTO struct {
	ID           uuid.UUID        `json:"id"`
	Title        *string          `json:"title"`
	Observations *string          `json:"observations"`
	StartsAt     time.Time        `json:"startsAt"`
	EndsAt       time.Time        `json:"endsAt"`
	Status       lifecycle.Status `json:"status"`
	Available    bool             `json:"available"`
	Service      *ServiceDTO      `json:"service"`
	Client       *ClientDTO       `json:"client"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func Provider(s *models.Barbershop) *ProviderDTO {
	if s == nil {
		return nil
	}
	return &ProviderDTO{ID: s.ID, Name: s.Name, Phone: s.Phone, Address: s.Address, Status: s.Status}
}

func ServiceType(st *models.ServiceType) *ServiceTypeDTO {
	if st == nil {
		return nil
	}
	return &ServiceTypeDTO{ID: st.ID, Title: st.Title, Description: st.Description, LogoURL: st.LogoURL}
}

func Service(svc *models.BarbershopService) *ServiceDTO {
	if svc == nil {
		return nil
	}
	return &ServiceDTO{
		ID:          svc.ID,
		Price:       svc.Price,
		Status:      svc.Status,
		Provider:    Provider(svc.Provider),
		ServiceType: ServiceType(svc.ServiceType),
	}
}

func Services(list []models.BarbershopService) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(list))
	for i := range list {
		out = append(out, *Service(&list[i]))
	}
	return out
}

// Appointment flattens a loaded appointment. The client's contact details are
// only meaningful to the shop and the client, so public callers pass
// withClient=false and get the id alone.
func Appointment(ap *models.Appointment, withClient bool) AppointmentDTO {
	out := AppointmentDTO{
		ID:           ap.ID,
		Title:        ap.Title,
		Observations: ap.Observations,
		StartsAt:     ap.StartsAt,
		EndsAt:       ap.EndsAt,
		Status:       ap.Status,
		Available:    !ap.Accepted(),
		Service:      Service(ap.Service),
		CreatedAt:    ap.CreatedAt,
		UpdatedAt:    ap.UpdatedAt,
	}
	if ap.ClientID != nil {
		out.Client = &ClientDTO{ID: *ap.ClientID}
		if withClient && ap.Client != nil {
			out.Client.Name = ap.Client.Name
			out.Client.Email = ap.Client.Email
			out.Client.Phone = ap.Client.Phone
		}
	}
	return out
}

func Appointments(list []models.Appointment, withClient bool) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(list))
	for i := range list {
		out = append(out, Appointment(&list[i], withClient))
	}
	return out
}
