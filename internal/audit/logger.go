package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Store interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	ListByShop(ctx context.Context, shopID uuid.UUID, q Query) ([]models.AuditLog, error)
}

// Query narrows a shop's trail. Empty fields do not filter.
type Query struct {
	Action string
	Entity string
	Limit  int
}

type Event struct {
	BarbershopID *uuid.UUID
	UserID       *uuid.UUID
	Action       string
	Entity       string
	EntityID     *uuid.UUID
	Metadata     any
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		ID:           uuid.New(),
		BarbershopID: ev.BarbershopID,
		UserID:       ev.UserID,
		Action:       ev.Action,
		Entity:       ev.Entity,
		EntityID:     ev.EntityID,
		Metadata:     metaJSON,
		CreatedAt:    time.Now().UTC(),
	}

	return l.store.Insert(ctx, &entry)
}

// List returns the newest entries first.
func (l *Logger) List(ctx context.Context, shopID uuid.UUID, q Query) ([]models.AuditLog, error) {
	if q.Limit <= 0 || q.Limit > 500 {
		q.Limit = 100
	}
	return l.store.ListByShop(ctx, shopID, q)
}
