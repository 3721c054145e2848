package barbershop

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type fixture struct {
	db    *memory.DB
	repo  domain.Repository
	audit *audit.Dispatcher
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := memory.New()
	d := audit.NewDispatcher(audit.New(db.Audit()), zap.NewNop())
	t.Cleanup(d.Close)
	return &fixture{db: db, repo: db.Barbershops(), audit: d}
}

func (f *fixture) user(t *testing.T, name string) access.Identity {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@example.com", PasswordHash: "x"}
	require.NoError(t, f.db.Users().Create(context.Background(), u))
	return access.Identity{UserID: u.ID}
}

func (f *fixture) owner(t *testing.T, name string) access.Identity {
	t.Helper()
	id := f.user(t, name)
	res, err := NewCreateShop(f.repo, f.audit, zap.NewNop()).Execute(context.Background(), id, ShopInput{Name: ptr(name)})
	require.NoError(t, err)
	id.ShopID = &res.Shop.ID
	return id
}

func ptr[T any](v T) *T { return &v }

func requireBusiness(t *testing.T, err error, status int, code string) {
	t.Helper()
	require.Error(t, err)
	be, ok := httperr.As(err)
	require.True(t, ok, "expected business error, got %v", err)
	assert.Equal(t, status, be.Status)
	assert.Equal(t, code, be.Code)
}

// ======================================================
// Shops
// ======================================================

func TestCreateShopUpsertsActiveShop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	caller := f.user(t, "ana")
	uc := NewCreateShop(f.repo, f.audit, zap.NewNop())

	first, err := uc.Execute(ctx, caller, ShopInput{Name: ptr("Ana Cuts"), Address: ptr("Main St")})
	require.NoError(t, err)
	assert.True(t, first.Created)

	second, err := uc.Execute(ctx, caller, ShopInput{Name: ptr("Ana Cuts 2")})
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Equal(t, first.Shop.ID, second.Shop.ID)
	assert.Equal(t, "Ana Cuts 2", second.Shop.Name)
	assert.Equal(t, "Main St", second.Shop.Address)

	shops, err := NewListShops(f.repo).Execute(ctx, domain.ShopFilter{})
	require.NoError(t, err)
	assert.Len(t, shops, 1)

	// After a delete the next create inserts a new row.
	caller.ShopID = &first.Shop.ID
	deleted, err := NewSetShopStatus(f.repo, f.audit).Execute(ctx, caller, lifecycle.ActionDelete)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDeleted, deleted.Status)

	third, err := uc.Execute(ctx, access.Identity{UserID: caller.UserID}, ShopInput{Name: ptr("Ana Returns")})
	require.NoError(t, err)
	assert.True(t, third.Created)
	assert.NotEqual(t, first.Shop.ID, third.Shop.ID)

	_, err = NewGetShop(f.repo).Execute(ctx, first.Shop.ID)
	requireBusiness(t, err, 400, "barbershop_not_found")
}

func TestCreateShopRequiresName(t *testing.T) {
	f := newFixture(t)
	_, err := NewCreateShop(f.repo, f.audit, zap.NewNop()).Execute(context.Background(), f.user(t, "ana"), ShopInput{})
	requireBusiness(t, err, 400, "invalid_name")
}

func TestShopProfileAndStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.owner(t, "ana")

	updated, err := NewUpdateShop(f.repo, f.audit).Execute(ctx, owner, ShopInput{Phone: ptr("555-0100")})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", updated.Phone)
	assert.Equal(t, "ana", updated.Name)

	disabled, err := NewSetShopStatus(f.repo, f.audit).Execute(ctx, owner, lifecycle.ActionDisable)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDisabled, disabled.Status)

	mine, err := NewGetMyShop(f.repo).Execute(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusDisabled, mine.Status)

	_, err = NewGetMyShop(f.repo).Execute(ctx, f.user(t, "bob"))
	requireBusiness(t, err, 401, "shop_required")
}

func TestListShopsSearchesByName(t *testing.T) {
	f := newFixture(t)
	f.owner(t, "north-cuts")
	f.owner(t, "south-fades")

	shops, err := NewListShops(f.repo).Execute(context.Background(), domain.ShopFilter{Query: "FADES"})
	require.NoError(t, err)
	require.Len(t, shops, 1)
	assert.Equal(t, "south-fades", shops[0].Name)
}

// ======================================================
// Services
// ======================================================

func TestServiceLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.owner(t, "ana")
	other := f.owner(t, "bob")

	st, err := NewCreateServiceType(f.repo, f.audit).Execute(ctx, owner, ServiceTypeInput{Title: "Haircut"})
	require.NoError(t, err)

	svc, err := NewCreateService(f.repo, f.audit).Execute(ctx, owner, ServiceInput{
		ServiceTypeID: &st.ID,
		Price:         ptr(35.0),
	})
	require.NoError(t, err)
	assert.Equal(t, *owner.ShopID, svc.BarbershopID)
	require.NotNil(t, svc.ServiceType)
	assert.Equal(t, "Haircut", svc.ServiceType.Title)

	_, err = NewUpdateService(f.repo, f.audit).Execute(ctx, other, svc.ID, ServiceInput{Price: ptr(1.0)})
	requireBusiness(t, err, 401, "not_owner")

	_, err = NewUpdateService(f.repo, f.audit).Execute(ctx, owner, svc.ID, ServiceInput{Price: ptr(-1.0)})
	requireBusiness(t, err, 400, "invalid_price")

	updated, err := NewUpdateService(f.repo, f.audit).Execute(ctx, owner, svc.ID, ServiceInput{Price: ptr(40.0)})
	require.NoError(t, err)
	assert.Equal(t, 40.0, updated.Price)

	list, err := NewListServices(f.repo).Execute(ctx, domain.ServiceFilter{ProviderID: owner.ShopID})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = NewSetServiceStatus(f.repo, f.audit).Execute(ctx, owner, svc.ID, lifecycle.ActionDelete)
	require.NoError(t, err)

	_, err = NewGetService(f.repo).Execute(ctx, svc.ID)
	requireBusiness(t, err, 400, "service_not_found")

	list, err = NewListServices(f.repo).Execute(ctx, domain.ServiceFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreateServiceValidatesType(t *testing.T) {
	f := newFixture(t)
	owner := f.owner(t, "ana")

	_, err := NewCreateService(f.repo, f.audit).Execute(context.Background(), owner, ServiceInput{
		ServiceTypeID: ptr(uuid.New()),
		Price:         ptr(10.0),
	})
	requireBusiness(t, err, 400, "service_type_not_found")
}

// ======================================================
// Service types
// ======================================================

func TestServiceTypeTitleIsUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.owner(t, "ana")
	uc := NewCreateServiceType(f.repo, f.audit)

	_, err := uc.Execute(ctx, owner, ServiceTypeInput{Title: "Beard"})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, owner, ServiceTypeInput{Title: "beard"})
	requireBusiness(t, err, 400, "service_type_exists")

	_, err = uc.Execute(ctx, f.user(t, "bob"), ServiceTypeInput{Title: "Shave"})
	requireBusiness(t, err, 401, "shop_required")

	types, err := NewListServiceTypes(f.repo).Execute(ctx)
	require.NoError(t, err)
	assert.Len(t, types, 1)
}

type fakeStore struct {
	key  string
	body []byte
}

func (s *fakeStore) Put(_ context.Context, key string, body []byte, _ string) (string, error) {
	s.key, s.body = key, body
	return "https://cdn.example.com/" + key, nil
}

func TestUploadLogo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.owner(t, "ana")

	st, err := NewCreateServiceType(f.repo, f.audit).Execute(ctx, owner, ServiceTypeInput{Title: "Beard"})
	require.NoError(t, err)

	store := &fakeStore{}
	transcode := func(r io.Reader) ([]byte, error) {
		b, _ := io.ReadAll(r)
		if len(b) == 0 {
			return nil, errors.New("empty")
		}
		return append([]byte("webp:"), b...), nil
	}
	uc := NewUploadLogo(f.repo, store, transcode, "image/webp", f.audit, zap.NewNop())

	got, err := uc.Execute(ctx, owner, st.ID, bytes.NewReader([]byte("png")))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/service-types/"+st.ID.String()+".webp", got.LogoURL)
	assert.Equal(t, []byte("webp:png"), store.body)

	reloaded, err := NewGetServiceType(f.repo).Execute(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, got.LogoURL, reloaded.LogoURL)

	_, err = uc.Execute(ctx, owner, st.ID, bytes.NewReader(nil))
	requireBusiness(t, err, 400, "invalid_image")

	disabled := NewUploadLogo(f.repo, nil, transcode, "image/webp", f.audit, zap.NewNop())
	_, err = disabled.Execute(ctx, owner, st.ID, bytes.NewReader([]byte("png")))
	requireBusiness(t, err, 400, "uploads_disabled")
}
