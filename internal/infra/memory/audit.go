package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AuditStore struct {
	db *DB
}

func (s *AuditStore) Insert(_ context.Context, entry *models.AuditLog) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.auditLogs = append(s.db.auditLogs, *entry)
	return nil
}

func (s *AuditStore) ListByShop(_ context.Context, shopID uuid.UUID, q audit.Query) ([]models.AuditLog, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	logs := []models.AuditLog{}
	for _, l := range s.db.auditLogs {
		if l.BarbershopID == nil || *l.BarbershopID != shopID {
			continue
		}
		if (q.Action != "" && l.Action != q.Action) || (q.Entity != "" && l.Entity != q.Entity) {
			continue
		}
		logs = append(logs, l)
	}

	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].CreatedAt.After(logs[j].CreatedAt)
	})
	if q.Limit > 0 && len(logs) > q.Limit {
		logs = logs[:q.Limit]
	}
	return logs, nil
}

var _ audit.Store = (*AuditStore)(nil)
