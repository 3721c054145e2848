package memory

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type UserStore struct {
	db *DB
}

func (s *UserStore) Create(_ context.Context, u *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrEmailTaken
		}
	}

	s.db.stamp(&u.Base, true)
	if u.Status == "" {
		u.Status = lifecycle.StatusEnabled
	}
	s.db.users[u.ID] = *u
	return nil
}

func (s *UserStore) Save(_ context.Context, u *models.User) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.stamp(&u.Base, false)
	s.db.users[u.ID] = *u
	return nil
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	u, ok := s.db.users[id]
	if !ok || u.Status == lifecycle.StatusDeleted {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.db.users {
		if u.Email == email && u.Status != lifecycle.StatusDeleted {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

var _ domain.Repository = (*UserStore)(nil)
