package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarbershopStore struct {
	db *DB
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (s *BarbershopStore) CreateShop(_ context.Context, shop *models.Barbershop) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.stamp(&shop.Base, true)
	if shop.Status == "" {
		shop.Status = lifecycle.StatusEnabled
	}
	stored := *shop
	stored.Owner = nil
	s.db.shops[shop.ID] = stored
	return nil
}

func (s *BarbershopStore) SaveShop(_ context.Context, shop *models.Barbershop) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.stamp(&shop.Base, false)
	stored := *shop
	stored.Owner = nil
	s.db.shops[shop.ID] = stored
	return nil
}

func (s *BarbershopStore) GetShop(_ context.Context, id uuid.UUID) (*models.Barbershop, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	shop, ok := s.db.shops[id]
	if !ok || !lifecycle.IsVisible(shop.Status) {
		return nil, domain.ErrNotFound
	}
	return &shop, nil
}

func (s *BarbershopStore) FindActiveShopByOwner(_ context.Context, ownerID uuid.UUID) (*models.Barbershop, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	var found *models.Barbershop
	for _, shop := range s.db.shops {
		if shop.OwnerID != ownerID || !lifecycle.IsVisible(shop.Status) {
			continue
		}
		if found == nil || shop.CreatedAt.Before(found.CreatedAt) {
			cp := shop
			found = &cp
		}
	}
	if found == nil {
		return nil, domain.ErrNotFound
	}
	return found, nil
}

func (s *BarbershopStore) ListShops(_ context.Context, f domain.ShopFilter) ([]models.Barbershop, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(f.Query))

	shops := []models.Barbershop{}
	for _, shop := range s.db.shops {
		if !lifecycle.IsVisible(shop.Status) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(shop.Name), query) &&
			!strings.Contains(strings.ToLower(shop.Address), query) {
			continue
		}
		shops = append(shops, shop)
	}

	sort.Slice(shops, func(i, j int) bool { return shops[i].Name < shops[j].Name })
	return shops, nil
}

// --------------------------------------------------
// Service type
// --------------------------------------------------

func (s *BarbershopStore) CreateServiceType(_ context.Context, st *models.ServiceType) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	for _, existing := range s.db.serviceTypes {
		if strings.EqualFold(existing.Title, st.Title) {
			return domain.ErrTitleTaken
		}
	}

	s.db.stamp(&st.Base, true)
	s.db.serviceTypes[st.ID] = *st
	return nil
}

func (s *BarbershopStore) SaveServiceType(_ context.Context, st *models.ServiceType) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.stamp(&st.Base, false)
	s.db.serviceTypes[st.ID] = *st
	return nil
}

func (s *BarbershopStore) GetServiceType(_ context.Context, id uuid.UUID) (*models.ServiceType, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	st, ok := s.db.serviceTypes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &st, nil
}

func (s *BarbershopStore) ListServiceTypes(_ context.Context) ([]models.ServiceType, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	types := make([]models.ServiceType, 0, len(s.db.serviceTypes))
	for _, st := range s.db.serviceTypes {
		types = append(types, st)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Title < types[j].Title })
	return types, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (s *BarbershopStore) CreateService(_ context.Context, svc *models.BarbershopService) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.stamp(&svc.Base, true)
	if svc.Status == "" {
		svc.Status = lifecycle.StatusEnabled
	}
	stored := *svc
	stored.Provider, stored.ServiceType = nil, nil
	s.db.services[svc.ID] = stored
	return nil
}

func (s *BarbershopStore) SaveService(_ context.Context, svc *models.BarbershopService) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.stamp(&svc.Base, false)
	stored := *svc
	stored.Provider, stored.ServiceType = nil, nil
	s.db.services[svc.ID] = stored
	return nil
}

func (s *BarbershopStore) GetService(_ context.Context, id uuid.UUID) (*models.BarbershopService, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	svc, ok := s.db.services[id]
	if !ok || !lifecycle.IsVisible(svc.Status) {
		return nil, domain.ErrNotFound
	}
	loaded := s.db.loadService(svc)
	return &loaded, nil
}

func (s *BarbershopStore) ListServices(_ context.Context, f domain.ServiceFilter) ([]models.BarbershopService, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	services := []models.BarbershopService{}
	for _, svc := range s.db.services {
		if !lifecycle.IsVisible(svc.Status) {
			continue
		}
		if f.ProviderID != nil && svc.BarbershopID != *f.ProviderID {
			continue
		}
		if f.ServiceTypeID != nil && svc.ServiceTypeID != *f.ServiceTypeID {
			continue
		}
		services = append(services, s.db.loadService(svc))
	}

	sort.Slice(services, func(i, j int) bool {
		return services[i].CreatedAt.Before(services[j].CreatedAt)
	})
	return services, nil
}

var _ domain.Repository = (*BarbershopStore)(nil)
