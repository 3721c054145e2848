package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Service").
		Preload("Service.Provider").
		Preload("Service.ServiceType").
		Preload("Client")
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uuid.UUID,
) (*models.BarbershopService, error) {

	var svc models.BarbershopService
	if err := r.db.WithContext(ctx).
		Preload("Provider").
		First(&svc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error
}

func (r *AppointmentGormRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.preloaded(ctx).
		Where("id = ? AND status IN ?", id, lifecycle.Visible()).
		First(&ap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) List(
	ctx context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {

	q := r.preloaded(ctx).
		Where("appointments.status IN ?", lifecycle.Visible())

	if f.Available != nil {
		if *f.Available {
			q = q.Where("appointments.client_id IS NULL")
		} else {
			q = q.Where("appointments.client_id IS NOT NULL")
		}
	}
	if f.From != nil {
		q = q.Where("appointments.starts_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("appointments.starts_at <= ?", *f.To)
	}
	if f.ServiceID != nil {
		q = q.Where("appointments.service_id = ?", *f.ServiceID)
	}
	if f.ClientID != nil {
		q = q.Where("appointments.client_id = ?", *f.ClientID)
	}

	// Slots of deleted services or deleted shops are never listed.
	shops := r.db.WithContext(ctx).
		Model(&models.Barbershop{}).
		Select("id").
		Where("status <> ?", lifecycle.StatusDeleted)
	services := r.db.WithContext(ctx).
		Model(&models.BarbershopService{}).
		Select("id").
		Where("status <> ?", lifecycle.StatusDeleted).
		Where("barbershop_id IN (?)", shops)
	if f.ProviderID != nil {
		services = services.Where("barbershop_id = ?", *f.ProviderID)
	}
	if f.ServiceTypeID != nil {
		services = services.Where("service_type_id = ?", *f.ServiceTypeID)
	}
	q = q.Where("appointments.service_id IN (?)", services)

	var apps []models.Appointment
	if err := q.Order("appointments.starts_at ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// ownerColumns are the columns a shop may write. client_id belongs to the
// guarded writes below.
var ownerColumns = []string{"service_id", "title", "observations", "starts_at", "ends_at", "status"}

func (r *AppointmentGormRepository) Update(
	ctx context.Context,
	ap *models.Appointment,
) error {
	res := r.db.WithContext(ctx).
		Model(ap).
		Select(ownerColumns).
		Updates(ap)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) Delete(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND client_id IS NULL AND status <> ?", id, lifecycle.StatusDeleted).
		Update("status", lifecycle.StatusDeleted)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Acceptance (conditional writes)
// --------------------------------------------------

func (r *AppointmentGormRepository) AssignClient(
	ctx context.Context,
	id uuid.UUID,
	clientID uuid.UUID,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND client_id IS NULL AND status = ?", id, lifecycle.StatusEnabled).
		Update("client_id", clientID)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *AppointmentGormRepository) ReleaseClient(
	ctx context.Context,
	id uuid.UUID,
	clientID uuid.UUID,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND client_id = ?", id, clientID).
		Updates(map[string]any{
			"client_id":    nil,
			"observations": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Messages
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateMessage(
	ctx context.Context,
	msg *models.AppointmentMessage,
) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(msg).Error
}

func (r *AppointmentGormRepository) ListMessages(
	ctx context.Context,
	appointmentID uuid.UUID,
) ([]models.AppointmentMessage, error) {

	var msgs []models.AppointmentMessage
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
