package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AuditGormStore struct {
	db *gorm.DB
}

func NewAuditGormStore(db *gorm.DB) *AuditGormStore {
	return &AuditGormStore{db: db}
}

func (s *AuditGormStore) Insert(ctx context.Context, entry *models.AuditLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}

func (s *AuditGormStore) ListByShop(ctx context.Context, shopID uuid.UUID, q audit.Query) ([]models.AuditLog, error) {
	tx := s.db.WithContext(ctx).Where("barbershop_id = ?", shopID)
	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}

	var logs []models.AuditLog
	if err := tx.Order("created_at DESC").Limit(q.Limit).Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

var _ audit.Store = (*AuditGormStore)(nil)
