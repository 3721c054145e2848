package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type BarbershopGormRepository struct {
	db *gorm.DB
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BarbershopGormRepository) CreateShop(ctx context.Context, shop *models.Barbershop) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(shop).Error
}

func (r *BarbershopGormRepository) SaveShop(ctx context.Context, shop *models.Barbershop) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(shop).Error
}

func (r *BarbershopGormRepository) GetShop(ctx context.Context, id uuid.UUID) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status IN ?", id, lifecycle.Visible()).
		First(&shop).Error; err != nil {
		return nil, notFound(err)
	}
	return &shop, nil
}

func (r *BarbershopGormRepository) FindActiveShopByOwner(ctx context.Context, ownerID uuid.UUID) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND status IN ?", ownerID, lifecycle.Visible()).
		Order("created_at ASC").
		First(&shop).Error; err != nil {
		return nil, notFound(err)
	}
	return &shop, nil
}

func (r *BarbershopGormRepository) ListShops(ctx context.Context, f domain.ShopFilter) ([]models.Barbershop, error) {
	q := r.db.WithContext(ctx).Where("status IN ?", lifecycle.Visible())

	if query := strings.ToLower(strings.TrimSpace(f.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like)
	}

	var shops []models.Barbershop
	if err := q.Order("name ASC").Find(&shops).Error; err != nil {
		return nil, err
	}
	return shops, nil
}

// --------------------------------------------------
// Service type
// --------------------------------------------------

func (r *BarbershopGormRepository) CreateServiceType(ctx context.Context, st *models.ServiceType) error {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.ServiceType{}).
		Where("LOWER(title) = ?", strings.ToLower(st.Title)).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrTitleTaken
	}
	return r.db.WithContext(ctx).Create(st).Error
}

func (r *BarbershopGormRepository) SaveServiceType(ctx context.Context, st *models.ServiceType) error {
	return r.db.WithContext(ctx).Save(st).Error
}

func (r *BarbershopGormRepository) GetServiceType(ctx context.Context, id uuid.UUID) (*models.ServiceType, error) {
	var st models.ServiceType
	if err := r.db.WithContext(ctx).First(&st, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &st, nil
}

func (r *BarbershopGormRepository) ListServiceTypes(ctx context.Context) ([]models.ServiceType, error) {
	var types []models.ServiceType
	if err := r.db.WithContext(ctx).Order("title ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BarbershopGormRepository) CreateService(ctx context.Context, svc *models.BarbershopService) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(svc).Error
}

func (r *BarbershopGormRepository) SaveService(ctx context.Context, svc *models.BarbershopService) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(svc).Error
}

func (r *BarbershopGormRepository) GetService(ctx context.Context, id uuid.UUID) (*models.BarbershopService, error) {
	var svc models.BarbershopService
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("ServiceType").
		Where("id = ? AND status IN ?", id, lifecycle.Visible()).
		First(&svc).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (r *BarbershopGormRepository) ListServices(ctx context.Context, f domain.ServiceFilter) ([]models.BarbershopService, error) {
	q := r.db.WithContext(ctx).
		Preload("Provider").
		Preload("ServiceType").
		Where("status IN ?", lifecycle.Visible())

	if f.ProviderID != nil {
		q = q.Where("barbershop_id = ?", *f.ProviderID)
	}
	if f.ServiceTypeID != nil {
		q = q.Where("service_type_id = ?", *f.ServiceTypeID)
	}

	var services []models.BarbershopService
	if err := q.Order("created_at ASC").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

var _ domain.Repository = (*BarbershopGormRepository)(nil)
