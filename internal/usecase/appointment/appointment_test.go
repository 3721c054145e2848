package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// Fixtures
// ======================================================

type env struct {
	db    *memory.DB
	repo  domain.Repository
	audit *audit.Dispatcher

	create  *CreateAppointment
	get     *GetAppointment
	owned   *GetOwnedAppointment
	list    *ListAppointments
	update  *UpdateAppointment
	status  *SetAppointmentStatus
	accept  *AcceptAppointment
	cancel  *CancelAppointment
	post    *PostMessage
	threads *ListMessages
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := memory.New()
	repo := db.Appointments()
	d := audit.NewDispatcher(audit.New(db.Audit()), zap.NewNop())
	t.Cleanup(d.Close)

	m := metrics.New()
	log := zap.NewNop()

	return &env{
		db:      db,
		repo:    repo,
		audit:   d,
		create:  NewCreateAppointment(repo, d, m, log),
		get:     NewGetAppointment(repo),
		owned:   NewGetOwnedAppointment(repo),
		list:    NewListAppointments(repo),
		update:  NewUpdateAppointment(repo, d, m, log),
		status:  NewSetAppointmentStatus(repo, d, m, log),
		accept:  NewAcceptAppointment(repo, d, m, log),
		cancel:  NewCancelAppointment(repo, d, m, log),
		post:    NewPostMessage(repo, d, m, log),
		threads: NewListMessages(repo),
	}
}

func (e *env) user(t *testing.T, name string) access.Identity {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, e.db.Users().Create(context.Background(), u))
	return access.Identity{UserID: u.ID}
}

func (e *env) shop(t *testing.T, name string) access.Identity {
	t.Helper()
	owner := e.user(t, name)
	shop := &models.Barbershop{OwnerID: owner.UserID, Name: name}
	require.NoError(t, e.db.Barbershops().CreateShop(context.Background(), shop))
	owner.ShopID = &shop.ID
	return owner
}

func (e *env) serviceType(t *testing.T, title string) uuid.UUID {
	t.Helper()
	st := &models.ServiceType{Title: title}
	require.NoError(t, e.db.Barbershops().CreateServiceType(context.Background(), st))
	return st.ID
}

func (e *env) service(t *testing.T, owner access.Identity, typeID uuid.UUID) uuid.UUID {
	t.Helper()
	svc := &models.BarbershopService{BarbershopID: *owner.ShopID, ServiceTypeID: typeID, Price: 30}
	require.NoError(t, e.db.Barbershops().CreateService(context.Background(), svc))
	return svc.ID
}

var base = time.Date(2030, 5, 10, 9, 0, 0, 0, time.UTC)

func (e *env) slot(t *testing.T, owner access.Identity, serviceID uuid.UUID, offset time.Duration) *models.Appointment {
	t.Helper()
	obs := "window seat"
	ap, err := e.create.Execute(context.Background(), owner, CreateAppointmentInput{
		ServiceID:    serviceID,
		Observations: &obs,
		StartsAt:     base.Add(offset),
		EndsAt:       base.Add(offset + 30*time.Minute),
	})
	require.NoError(t, err)
	return ap
}

func requireBusiness(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	be, ok := httperr.As(err)
	require.True(t, ok, "expected business error, got %v", err)
	assert.Equal(t, status, be.Status)
	assert.Equal(t, code, be.Code)
}

// ======================================================
// Create / Get
// ======================================================

func TestCreatedAppointmentIsRetrievable(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	svc := e.service(t, owner, e.serviceType(t, "Haircut"))

	ap := e.slot(t, owner, svc, 0)

	got, err := e.get.Execute(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusEnabled, got.Status)
	assert.Nil(t, got.ClientID)
	require.NotNil(t, got.Service)
	assert.Equal(t, *owner.ShopID, got.Service.BarbershopID)
	require.NotNil(t, got.Service.Provider)
	require.NotNil(t, got.Service.ServiceType)
	assert.Equal(t, "Haircut", got.Service.ServiceType.Title)
}

func TestCreateRejectsForeignServiceAndBadPeriod(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	other := e.shop(t, "beta")
	svc := e.service(t, owner, e.serviceType(t, "Haircut"))
	ctx := context.Background()

	_, err := e.create.Execute(ctx, other, CreateAppointmentInput{
		ServiceID: svc, StartsAt: base, EndsAt: base.Add(time.Hour),
	})
	requireBusiness(t, err, 401, "not_owner")

	_, err = e.create.Execute(ctx, owner, CreateAppointmentInput{
		ServiceID: svc, StartsAt: base, EndsAt: base,
	})
	requireBusiness(t, err, 400, "invalid_period")

	_, err = e.create.Execute(ctx, owner, CreateAppointmentInput{
		ServiceID: uuid.New(), StartsAt: base, EndsAt: base.Add(time.Hour),
	})
	requireBusiness(t, err, 400, "service_not_found")

	_, err = e.create.Execute(ctx, e.user(t, "nobody"), CreateAppointmentInput{
		ServiceID: svc, StartsAt: base, EndsAt: base.Add(time.Hour),
	})
	requireBusiness(t, err, 401, "shop_required")
}

func TestOverlappingSlotsArePermitted(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	svc := e.service(t, owner, e.serviceType(t, "Haircut"))

	e.slot(t, owner, svc, 0)
	e.slot(t, owner, svc, 10*time.Minute)

	apps, err := e.list.Execute(context.Background(), domain.Filter{})
	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestGetOwnedRejectsOtherShop(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	other := e.shop(t, "beta")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)

	_, err := e.owned.Execute(context.Background(), other, ap.ID)
	requireBusiness(t, err, 401, "not_owner")

	got, err := e.owned.Execute(context.Background(), owner, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.ID, got.ID)
}

// ======================================================
// Accept / Cancel
// ======================================================

func TestAcceptSetsClientAndSecondAcceptFails(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)
	ctx := context.Background()

	bob := e.user(t, "bob")
	carol := e.user(t, "carol")

	accepted, err := e.accept.Execute(ctx, bob, ap.ID)
	require.NoError(t, err)
	require.NotNil(t, accepted.ClientID)
	assert.Equal(t, bob.UserID, *accepted.ClientID)
	require.NotNil(t, accepted.Client)
	assert.Equal(t, "bob", accepted.Client.Name)

	_, err = e.accept.Execute(ctx, carol, ap.ID)
	requireBusiness(t, err, 400, "already_accepted")

	_, err = e.accept.Execute(ctx, bob, ap.ID)
	requireBusiness(t, err, 400, "already_accepted")
}

func TestShopCannotAccept(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	other := e.shop(t, "beta")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)

	_, err := e.accept.Execute(context.Background(), other, ap.ID)
	requireBusiness(t, err, 401, "shop_cannot_accept")
}

func TestAcceptRejectsDisabledSlot(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)
	ctx := context.Background()

	_, err := e.status.Execute(ctx, owner, ap.ID, lifecycle.ActionDisable)
	require.NoError(t, err)

	_, err = e.accept.Execute(ctx, e.user(t, "bob"), ap.ID)
	requireBusiness(t, err, 400, "appointment_unavailable")
}

func TestConcurrentAcceptHasOneWinner(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)

	const clients = 10
	callers := make([]access.Identity, clients)
	for i := range callers {
		callers[i] = e.user(t, uuid.NewString()[:8])
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
	)
	for _, c := range callers {
		wg.Add(1)
		go func(c access.Identity) {
			defer wg.Done()
			if _, err := e.accept.Execute(context.Background(), c, ap.ID); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}(c)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
}

func TestCancelByClientReleasesSlot(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)
	ctx := context.Background()

	bob := e.user(t, "bob")
	_, err := e.accept.Execute(ctx, bob, ap.ID)
	require.NoError(t, err)

	_, err = e.cancel.Execute(ctx, e.user(t, "mallory"), ap.ID)
	requireBusiness(t, err, 401, "not_client")

	_, err = e.cancel.Execute(ctx, owner, ap.ID)
	requireBusiness(t, err, 401, "not_client")

	canceled, err := e.cancel.Execute(ctx, bob, ap.ID)
	require.NoError(t, err)
	assert.Nil(t, canceled.ClientID)
	assert.Nil(t, canceled.Observations)
	assert.Equal(t, lifecycle.StatusEnabled, canceled.Status)

	// Released slots can be accepted again.
	_, err = e.accept.Execute(ctx, e.user(t, "carol"), ap.ID)
	assert.NoError(t, err)
}

func TestCancelWithoutClientIsUnauthorized(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)

	_, err := e.cancel.Execute(context.Background(), e.user(t, "bob"), ap.ID)
	requireBusiness(t, err, 401, "not_client")
}

// ======================================================
// Status changes
// ======================================================

func TestDeleteRefusedWhileAccepted(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)
	ctx := context.Background()

	bob := e.user(t, "bob")
	_, err := e.accept.Execute(ctx, bob, ap.ID)
	require.NoError(t, err)

	_, err = e.status.Execute(ctx, owner, ap.ID, lifecycle.ActionDelete)
	requireBusiness(t, err, 400, "appointment_accepted")

	_, err = e.cancel.Execute(ctx, bob, ap.ID)
	require.NoError(t, err)

	deleted, err := e.status.Execute(ctx, owner, ap.ID, lifecycle.ActionDelete)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDeleted, deleted.Status)

	_, err = e.get.Execute(ctx, ap.ID)
	requireBusiness(t, err, 400, "appointment_not_found")

	apps, err := e.list.Execute(ctx, domain.Filter{})
	require.NoError(t, err)
	assert.Empty(t, apps)

	_, err = e.status.Execute(ctx, owner, ap.ID, lifecycle.ActionEnable)
	requireBusiness(t, err, 400, "appointment_not_found")
}

func TestDisableHidesFromAvailableButNotFromGet(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)
	ctx := context.Background()

	disabled, err := e.status.Execute(ctx, owner, ap.ID, lifecycle.ActionDisable)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDisabled, disabled.Status)

	got, err := e.get.Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDisabled, got.Status)

	enabled, err := e.status.Execute(ctx, owner, ap.ID, lifecycle.ActionEnable)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusEnabled, enabled.Status)
}

func TestStatusChangeRequiresOwner(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)

	_, err := e.status.Execute(context.Background(), e.shop(t, "beta"), ap.ID, lifecycle.ActionDisable)
	requireBusiness(t, err, 401, "not_owner")
}

// ======================================================
// Update
// ======================================================

func TestUpdateMergesProvidedFields(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	haircut := e.serviceType(t, "Haircut")
	shave := e.serviceType(t, "Shave")
	svcA := e.service(t, owner, haircut)
	svcB := e.service(t, owner, shave)
	ap := e.slot(t, owner, svcA, 0)
	ctx := context.Background()

	title := "Morning"
	updated, err := e.update.Execute(ctx, owner, ap.ID, UpdateAppointmentInput{
		Title:     &title,
		ServiceID: &svcB,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Title)
	assert.Equal(t, "Morning", *updated.Title)
	assert.Equal(t, svcB, updated.ServiceID)
	assert.Equal(t, "Shave", updated.Service.ServiceType.Title)
	require.NotNil(t, updated.Observations)
	assert.Equal(t, "window seat", *updated.Observations)
	assert.True(t, updated.StartsAt.Equal(base))

	early := base.Add(-time.Hour)
	_, err = e.update.Execute(ctx, owner, ap.ID, UpdateAppointmentInput{EndsAt: &early})
	requireBusiness(t, err, 400, "invalid_period")
}

func TestUpdateRejectsServiceFromOtherProvider(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	other := e.shop(t, "beta")
	haircut := e.serviceType(t, "Haircut")
	ap := e.slot(t, owner, e.service(t, owner, haircut), 0)
	foreign := e.service(t, other, haircut)

	_, err := e.update.Execute(context.Background(), owner, ap.ID, UpdateAppointmentInput{ServiceID: &foreign})
	requireBusiness(t, err, 400, "service_other_provider")
}

// ======================================================
// List
// ======================================================

func TestListIntersectsProviderAndServiceType(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	haircut := e.serviceType(t, "Haircut")
	beard := e.serviceType(t, "Beard")

	shopA := e.shop(t, "alpha")
	shopB := e.shop(t, "beta")

	aHaircut := e.service(t, shopA, haircut)
	aBeard := e.service(t, shopA, beard)
	bHaircut := e.service(t, shopB, haircut)
	bBeard := e.service(t, shopB, beard)

	want := []uuid.UUID{
		e.slot(t, shopA, aHaircut, 0).ID,
		e.slot(t, shopA, aHaircut, time.Hour).ID,
	}
	e.slot(t, shopA, aBeard, 2*time.Hour)
	e.slot(t, shopB, bHaircut, 3*time.Hour)
	e.slot(t, shopB, bHaircut, 4*time.Hour)
	e.slot(t, shopB, bBeard, 5*time.Hour)

	apps, err := e.list.Execute(ctx, domain.Filter{
		ProviderID:    shopA.ShopID,
		ServiceTypeID: &haircut,
	})
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, want[0], apps[0].ID)
	assert.Equal(t, want[1], apps[1].ID)

	byType, err := e.list.Execute(ctx, domain.Filter{ServiceTypeID: &beard})
	require.NoError(t, err)
	assert.Len(t, byType, 2)

	byShop, err := e.list.Execute(ctx, domain.Filter{ProviderID: shopB.ShopID})
	require.NoError(t, err)
	assert.Len(t, byShop, 3)
}

func TestListAvailabilityAndPeriod(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	svc := e.service(t, owner, e.serviceType(t, "Haircut"))
	ctx := context.Background()

	first := e.slot(t, owner, svc, 0)
	e.slot(t, owner, svc, time.Hour)
	third := e.slot(t, owner, svc, 24*time.Hour)

	bob := e.user(t, "bob")
	_, err := e.accept.Execute(ctx, bob, first.ID)
	require.NoError(t, err)

	yes, no := true, false

	free, err := e.list.Execute(ctx, domain.Filter{Available: &yes})
	require.NoError(t, err)
	assert.Len(t, free, 2)

	taken, err := e.list.Execute(ctx, domain.Filter{Available: &no})
	require.NoError(t, err)
	require.Len(t, taken, 1)
	assert.Equal(t, first.ID, taken[0].ID)

	mine, err := e.list.Execute(ctx, domain.Filter{ClientID: &bob.UserID})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	from := base.Add(30 * time.Minute)
	to := base.Add(24 * time.Hour)
	window, err := e.list.Execute(ctx, domain.Filter{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, window, 2)
	assert.Equal(t, third.ID, window[1].ID)

	_, err = e.list.Execute(ctx, domain.Filter{From: &to, To: &from})
	requireBusiness(t, err, 400, "invalid_period")
}

// ======================================================
// Messages
// ======================================================

func TestMessagesBetweenClientAndShop(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)
	ctx := context.Background()

	bob := e.user(t, "bob")
	_, err := e.accept.Execute(ctx, bob, ap.ID)
	require.NoError(t, err)

	_, err = e.post.Execute(ctx, bob, ap.ID, "  running late  ")
	require.NoError(t, err)
	_, err = e.post.Execute(ctx, owner, ap.ID, "no problem")
	require.NoError(t, err)

	_, err = e.post.Execute(ctx, e.user(t, "mallory"), ap.ID, "hi")
	requireBusiness(t, err, 401, "not_participant")

	_, err = e.post.Execute(ctx, bob, ap.ID, "   ")
	requireBusiness(t, err, 400, "invalid_message")

	msgs, err := e.threads.Execute(ctx, owner, ap.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "running late", msgs[0].Body)
	assert.Equal(t, bob.UserID, msgs[0].AuthorID)
	assert.Equal(t, "no problem", msgs[1].Body)

	_, err = e.threads.Execute(ctx, e.user(t, "eve"), ap.ID)
	requireBusiness(t, err, 401, "not_participant")
}

// ======================================================
// Owner writes racing a client
// ======================================================

// acceptingRepo commits an accept for client right before each owner-side
// write, as a concurrent request would between read and write.
type acceptingRepo struct {
	domain.Repository
	client uuid.UUID
}

func (r *acceptingRepo) Update(ctx context.Context, ap *models.Appointment) error {
	if _, err := r.Repository.AssignClient(ctx, ap.ID, r.client); err != nil {
		return err
	}
	return r.Repository.Update(ctx, ap)
}

func (r *acceptingRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, err := r.Repository.AssignClient(ctx, id, r.client); err != nil {
		return false, err
	}
	return r.Repository.Delete(ctx, id)
}

func TestOwnerWritesKeepConcurrentAccept(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	serviceID := e.service(t, owner, e.serviceType(t, "Haircut"))
	bob := e.user(t, "bob")
	ctx := context.Background()

	repo := &acceptingRepo{Repository: e.repo, client: bob.UserID}
	m := metrics.New()
	update := NewUpdateAppointment(repo, e.audit, m, zap.NewNop())
	status := NewSetAppointmentStatus(repo, e.audit, m, zap.NewNop())

	t.Run("update", func(t *testing.T) {
		ap := e.slot(t, owner, serviceID, 0)
		title := "renamed"

		updated, err := update.Execute(ctx, owner, ap.ID, UpdateAppointmentInput{Title: &title})
		require.NoError(t, err)
		require.NotNil(t, updated.ClientID)
		assert.Equal(t, bob.UserID, *updated.ClientID)
		assert.Equal(t, "renamed", *updated.Title)
	})

	t.Run("disable", func(t *testing.T) {
		ap := e.slot(t, owner, serviceID, time.Hour)

		disabled, err := status.Execute(ctx, owner, ap.ID, lifecycle.ActionDisable)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.StatusDisabled, disabled.Status)

		stored, err := e.get.Execute(ctx, ap.ID)
		require.NoError(t, err)
		require.NotNil(t, stored.ClientID)
		assert.Equal(t, bob.UserID, *stored.ClientID)
	})

	t.Run("delete", func(t *testing.T) {
		ap := e.slot(t, owner, serviceID, 2*time.Hour)

		_, err := status.Execute(ctx, owner, ap.ID, lifecycle.ActionDelete)
		requireBusiness(t, err, 400, "appointment_accepted")

		stored, err := e.get.Execute(ctx, ap.ID)
		require.NoError(t, err)
		assert.Equal(t, lifecycle.StatusEnabled, stored.Status)
		require.NotNil(t, stored.ClientID)
		assert.Equal(t, bob.UserID, *stored.ClientID)
	})
}

func TestUpdateDoesNotRestoreCanceledClient(t *testing.T) {
	e := newEnv(t)
	owner := e.shop(t, "alpha")
	ap := e.slot(t, owner, e.service(t, owner, e.serviceType(t, "Haircut")), 0)
	ctx := context.Background()

	bob := e.user(t, "bob")
	_, err := e.accept.Execute(ctx, bob, ap.ID)
	require.NoError(t, err)

	// Owner's copy still carries bob when the cancel commits.
	stale, err := e.owned.Execute(ctx, owner, ap.ID)
	require.NoError(t, err)
	_, err = e.cancel.Execute(ctx, bob, ap.ID)
	require.NoError(t, err)

	require.NoError(t, e.repo.Update(ctx, stale))

	stored, err := e.get.Execute(ctx, ap.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ClientID)
}

// ======================================================
// Listing hides removed catalogue entries
// ======================================================

func TestListSkipsDeletedServiceAndShop(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	shops := e.db.Barbershops()

	alpha := e.shop(t, "alpha")
	beta := e.shop(t, "beta")
	typeID := e.serviceType(t, "Haircut")

	gone := e.service(t, alpha, typeID)
	kept := e.service(t, alpha, typeID)
	e.slot(t, alpha, gone, 0)
	live := e.slot(t, alpha, kept, time.Hour)
	e.slot(t, beta, e.service(t, beta, typeID), 2*time.Hour)

	svc, err := shops.GetService(ctx, gone)
	require.NoError(t, err)
	svc.Status = lifecycle.StatusDeleted
	require.NoError(t, shops.SaveService(ctx, svc))

	shop, err := shops.GetShop(ctx, *beta.ShopID)
	require.NoError(t, err)
	shop.Status = lifecycle.StatusDeleted
	require.NoError(t, shops.SaveShop(ctx, shop))

	apps, err := e.list.Execute(ctx, domain.Filter{})
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, live.ID, apps[0].ID)
}
