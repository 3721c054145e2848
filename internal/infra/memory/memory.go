// Package memory keeps every record in process memory behind one mutex. It
// implements the same repository interfaces as the gorm stores and backs
// STORAGE_DRIVER=memory and the tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type DB struct {
	mu sync.RWMutex

	users        map[uuid.UUID]models.User
	shops        map[uuid.UUID]models.Barbershop
	serviceTypes map[uuid.UUID]models.ServiceType
	services     map[uuid.UUID]models.BarbershopService
	appointments map[uuid.UUID]models.Appointment
	messages     []models.AppointmentMessage
	auditLogs    []models.AuditLog

	now func() time.Time
}

func New() *DB {
	return &DB{
		users:        map[uuid.UUID]models.User{},
		shops:        map[uuid.UUID]models.Barbershop{},
		serviceTypes: map[uuid.UUID]models.ServiceType{},
		services:     map[uuid.UUID]models.BarbershopService{},
		appointments: map[uuid.UUID]models.Appointment{},
		now:          time.Now,
	}
}

func (db *DB) Users() *UserStore               { return &UserStore{db: db} }
func (db *DB) Barbershops() *BarbershopStore   { return &BarbershopStore{db: db} }
func (db *DB) Appointments() *AppointmentStore { return &AppointmentStore{db: db} }
func (db *DB) Audit() *AuditStore              { return &AuditStore{db: db} }

// stamp mirrors gorm's BeforeCreate and timestamp handling.
func (db *DB) stamp(b *models.Base, creating bool) {
	now := db.now().UTC()
	if creating {
		if b.ID == uuid.Nil {
			b.ID = uuid.New()
		}
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

// -------- association loaders (caller holds the lock) --------

func (db *DB) loadService(svc models.BarbershopService) models.BarbershopService {
	if shop, ok := db.shops[svc.BarbershopID]; ok {
		svc.Provider = &shop
	}
	if st, ok := db.serviceTypes[svc.ServiceTypeID]; ok {
		svc.ServiceType = &st
	}
	return svc
}

func (db *DB) loadAppointment(ap models.Appointment) models.Appointment {
	if svc, ok := db.services[ap.ServiceID]; ok {
		loaded := db.loadService(svc)
		ap.Service = &loaded
	}
	ap.Client = nil
	if ap.ClientID != nil {
		if u, ok := db.users[*ap.ClientID]; ok {
			ap.Client = &u
		}
	}
	return ap
}
