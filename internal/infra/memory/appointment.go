package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentStore struct {
	db *DB
}

func (s *AppointmentStore) GetService(_ context.Context, id uuid.UUID) (*models.BarbershopService, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	svc, ok := s.db.services[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	loaded := s.db.loadService(svc)
	return &loaded, nil
}

func (s *AppointmentStore) Create(_ context.Context, ap *models.Appointment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.stamp(&ap.Base, true)
	if ap.Status == "" {
		ap.Status = lifecycle.StatusEnabled
	}
	s.db.appointments[ap.ID] = strip(*ap)
	return nil
}

func (s *AppointmentStore) Get(_ context.Context, id uuid.UUID) (*models.Appointment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	ap, ok := s.db.appointments[id]
	if !ok || !lifecycle.IsVisible(ap.Status) {
		return nil, domain.ErrNotFound
	}
	loaded := s.db.loadAppointment(ap)
	return &loaded, nil
}

func (s *AppointmentStore) List(_ context.Context, f domain.Filter) ([]models.Appointment, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	apps := []models.Appointment{}
	for _, ap := range s.db.appointments {
		loaded := s.db.loadAppointment(ap)
		if f.Matches(&loaded) {
			apps = append(apps, loaded)
		}
	}

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].StartsAt.Before(apps[j].StartsAt)
	})
	return apps, nil
}

func (s *AppointmentStore) Update(_ context.Context, ap *models.Appointment) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	stored, ok := s.db.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}
	s.db.stamp(&ap.Base, false)

	next := strip(*ap)
	next.ClientID = stored.ClientID
	next.CreatedAt = stored.CreatedAt
	s.db.appointments[ap.ID] = next
	return nil
}

func (s *AppointmentStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	ap, ok := s.db.appointments[id]
	if !ok || ap.ClientID != nil || ap.Status == lifecycle.StatusDeleted {
		return false, nil
	}

	ap.Status = lifecycle.StatusDeleted
	s.db.stamp(&ap.Base, false)
	s.db.appointments[id] = ap
	return true, nil
}

func (s *AppointmentStore) AssignClient(_ context.Context, id, clientID uuid.UUID) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	ap, ok := s.db.appointments[id]
	if !ok || ap.ClientID != nil || ap.Status != lifecycle.StatusEnabled {
		return false, nil
	}

	ap.ClientID = &clientID
	s.db.stamp(&ap.Base, false)
	s.db.appointments[id] = ap
	return true, nil
}

func (s *AppointmentStore) ReleaseClient(_ context.Context, id, clientID uuid.UUID) (bool, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	ap, ok := s.db.appointments[id]
	if !ok || ap.ClientID == nil || *ap.ClientID != clientID {
		return false, nil
	}

	ap.ClientID = nil
	ap.Observations = nil
	s.db.stamp(&ap.Base, false)
	s.db.appointments[id] = ap
	return true, nil
}

func (s *AppointmentStore) CreateMessage(_ context.Context, msg *models.AppointmentMessage) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.stamp(&msg.Base, true)
	stored := *msg
	stored.Appointment, stored.Author = nil, nil
	s.db.messages = append(s.db.messages, stored)
	return nil
}

func (s *AppointmentStore) ListMessages(_ context.Context, appointmentID uuid.UUID) ([]models.AppointmentMessage, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	msgs := []models.AppointmentMessage{}
	for _, msg := range s.db.messages {
		if msg.AppointmentID != appointmentID {
			continue
		}
		if u, ok := s.db.users[msg.AuthorID]; ok {
			msg.Author = &u
		}
		msgs = append(msgs, msg)
	}
	// messages is append-only, so insertion order is creation order.
	return msgs, nil
}

func strip(ap models.Appointment) models.Appointment {
	ap.Service = nil
	ap.Client = nil
	return ap
}

var _ domain.Repository = (*AppointmentStore)(nil)
