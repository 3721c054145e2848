package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/infra/cache"
	"github.com/BruksfildServices01/barber-booking/internal/infra/mail"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type outbox struct {
	mu   sync.Mutex
	sent []mail.Message
}

func (o *outbox) Send(_ context.Context, msg mail.Message) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sent = append(o.sent, msg)
	return nil
}

func (o *outbox) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.sent)
}

type server struct {
	t      *testing.T
	engine *gin.Engine
	mails  *outbox
}

func newServer(t *testing.T) *server {
	t.Helper()

	log := zap.NewNop()
	store := memory.New()
	auditLogger := audit.New(store.Audit())
	dispatcher := audit.NewDispatcher(auditLogger, log)
	t.Cleanup(dispatcher.Close)

	mails := &outbox{}
	r := gin.New()
	routes.RegisterRoutes(r, routes.Deps{
		Config: &config.Config{
			JWTSecret:         "test-secret",
			JWTTTL:            time.Hour,
			ResetTokenTTL:     time.Hour,
			ResetPasswordURL:  "http://localhost:3000/reset-password",
			AuthRatePerMinute: 6000,
			AuthRateBurst:     100,
		},
		Log:          log,
		Users:        store.Users(),
		Shops:        store.Barbershops(),
		Appointments: store.Appointments(),
		Audit:        auditLogger,
		Dispatcher:   dispatcher,
		Metrics:      metrics.New(),
		Tokens:       cache.NewMemoryTokenStore(),
		Mailer:       mails,
		CheckDomain:  validators.AnyDomain,
	})

	return &server{t: t, engine: r, mails: mails}
}

func (s *server) raw(method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *server) do(method, path, token string, body any) (int, map[string]any) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(b)
	}

	rec := s.raw(method, path, token, reader)

	out := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec.Code, out
}

// register returns the new user's id and session token.
func (s *server) register(name, email string) (string, string) {
	s.t.Helper()

	status, body := s.do(http.MethodPost, "/user/register", "", map[string]any{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(s.t, http.StatusCreated, status, body)

	return field(body, "user", "id").(string), body["token"].(string)
}

func field(m map[string]any, path ...string) any {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

// shopWithSlot creates a shop, a service type, a service and one slot for
// the owner behind token, returning the appointment id.
func (s *server) shopWithSlot(token, shopName, typeTitle string) (string, string) {
	s.t.Helper()

	status, body := s.do(http.MethodPost, "/barbershop", token, map[string]any{"name": shopName})
	require.Equal(s.t, http.StatusCreated, status, body)
	shopID := field(body, "barbershop", "id").(string)

	status, body = s.do(http.MethodPost, "/service-types", token, map[string]any{"title": typeTitle})
	require.Equal(s.t, http.StatusCreated, status, body)
	typeID := field(body, "serviceType", "id").(string)

	status, body = s.do(http.MethodPost, "/barbershop/service", token, map[string]any{
		"serviceTypeId": typeID,
		"price":         30.0,
	})
	require.Equal(s.t, http.StatusCreated, status, body)
	serviceID := field(body, "service", "id").(string)

	status, body = s.do(http.MethodPost, "/barbershop/appointment", token, map[string]any{
		"serviceId":    serviceID,
		"title":        "Morning cut",
		"observations": "window seat",
		"startsAt":     "2026-11-02T10:00:00Z",
		"endsAt":       "2026-11-02T10:30:00Z",
	})
	require.Equal(s.t, http.StatusCreated, status, body)
	assert.Equal(s.t, "enabled", field(body, "appointment", "status"))
	assert.Nil(s.t, field(body, "appointment", "client"))

	return shopID, field(body, "appointment", "id").(string)
}

func TestBookingFlow(t *testing.T) {
	s := newServer(t)

	_, ownerToken := s.register("Alice", "alice@example.com")
	_, slotID := s.shopWithSlot(ownerToken, "Shop S", "Haircut")

	bobID, bobToken := s.register("Bob", "bob@example.com")

	status, body := s.do(http.MethodPut, "/client/appointment/accept/"+slotID, bobToken, nil)
	require.Equal(t, http.StatusOK, status, body)

	status, body = s.do(http.MethodGet, "/barbershop/appointment/"+slotID, ownerToken, nil)
	require.Equal(t, http.StatusOK, status, body)
	assert.Equal(t, bobID, field(body, "appointment", "client", "id"))
	assert.Equal(t, "bob@example.com", field(body, "appointment", "client", "email"))

	t.Run("second accept is rejected", func(t *testing.T) {
		_, carolToken := s.register("Carol", "carol@example.com")

		status, body := s.do(http.MethodPut, "/client/appointment/accept/"+slotID, carolToken, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "appointment already accepted", body["message"])
	})

	t.Run("shop owner cannot accept", func(t *testing.T) {
		status, _ := s.do(http.MethodPut, "/client/appointment/accept/"+slotID, ownerToken, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("public view hides client details", func(t *testing.T) {
		status, body := s.do(http.MethodGet, "/appointments/"+slotID, "", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, bobID, field(body, "appointment", "client", "id"))
		assert.Equal(t, "", field(body, "appointment", "client", "email"))
		assert.Equal(t, false, field(body, "appointment", "available"))
	})

	t.Run("client lists own bookings", func(t *testing.T) {
		status, body := s.do(http.MethodGet, "/client/appointment", bobToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 1, body["total"])
	})

	t.Run("owner cannot delete an accepted slot", func(t *testing.T) {
		status, _ := s.do(http.MethodDelete, "/barbershop/appointment/"+slotID, ownerToken, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("messages between client and shop", func(t *testing.T) {
		status, _ := s.do(http.MethodPost, "/appointments/"+slotID+"/messages", bobToken, map[string]any{"body": "running late"})
		require.Equal(t, http.StatusCreated, status)

		status, body := s.do(http.MethodGet, "/appointments/"+slotID+"/messages", ownerToken, nil)
		require.Equal(t, http.StatusOK, status)
		assert.EqualValues(t, 1, body["total"])
	})

	t.Run("only the client can cancel", func(t *testing.T) {
		_, daveToken := s.register("Dave", "dave@example.com")

		status, _ := s.do(http.MethodPut, "/client/appointment/cancel/"+slotID, daveToken, nil)
		assert.Equal(t, http.StatusUnauthorized, status)

		status, body := s.do(http.MethodPut, "/client/appointment/cancel/"+slotID, bobToken, nil)
		require.Equal(t, http.StatusOK, status, body)
		assert.Nil(t, field(body, "appointment", "client"))
		assert.Equal(t, "enabled", field(body, "appointment", "status"))
	})

	t.Run("released slot can be deleted", func(t *testing.T) {
		status, _ := s.do(http.MethodDelete, "/barbershop/appointment/"+slotID, ownerToken, nil)
		require.Equal(t, http.StatusOK, status)

		status, _ = s.do(http.MethodGet, "/appointments/"+slotID, "", nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestPublicAppointmentFilters(t *testing.T) {
	s := newServer(t)

	_, tokenA := s.register("Alice", "alice@example.com")
	shopA, slotA := s.shopWithSlot(tokenA, "Shop A", "Haircut")

	_, tokenB := s.register("Bruno", "bruno@example.com")
	_, slotB := s.shopWithSlot(tokenB, "Shop B", "Beard")

	_, clientToken := s.register("Carol", "carol@example.com")
	status, _ := s.do(http.MethodPut, "/client/appointment/accept/"+slotB, clientToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := s.do(http.MethodGet, "/appointments", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 2, body["total"])

	status, body = s.do(http.MethodGet, "/appointments?available=true", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.EqualValues(t, 1, body["total"])
	assert.Equal(t, slotA, body["appointments"].([]any)[0].(map[string]any)["id"])

	status, body = s.do(http.MethodGet, "/appointments?providerId="+shopA, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, body["total"])

	status, body = s.do(http.MethodGet, "/appointments?from=2026-11-03", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 0, body["total"])

	status, body = s.do(http.MethodGet, "/appointments?from=2026-11-03&to=2026-11-01", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", body["status"])

	status, _ = s.do(http.MethodGet, "/appointments?available=maybe", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestShopUpsert(t *testing.T) {
	s := newServer(t)
	_, token := s.register("Alice", "alice@example.com")

	status, body := s.do(http.MethodPost, "/barbershop", token, map[string]any{"name": "First"})
	require.Equal(t, http.StatusCreated, status)
	first := field(body, "barbershop", "id")
	assert.Equal(t, true, body["created"])

	status, body = s.do(http.MethodPost, "/barbershop", token, map[string]any{"name": "Renamed"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["created"])
	assert.Equal(t, first, field(body, "barbershop", "id"))
	assert.Equal(t, "Renamed", field(body, "barbershop", "name"))

	status, _ = s.do(http.MethodDelete, "/barbershop", token, nil)
	require.Equal(t, http.StatusOK, status)

	status, body = s.do(http.MethodPost, "/barbershop", token, map[string]any{"name": "Second"})
	require.Equal(t, http.StatusCreated, status)
	assert.NotEqual(t, first, field(body, "barbershop", "id"))

	require.Eventually(t, func() bool {
		rec := s.raw(http.MethodGet, "/barbershop/audit-logs?entity=barbershop", token, nil)
		var body struct {
			Total int `json:"total"`
		}
		return rec.Code == http.StatusOK &&
			json.Unmarshal(rec.Body.Bytes(), &body) == nil &&
			body.Total == 1
	}, time.Second, 10*time.Millisecond)
}

func TestErrorEnvelope(t *testing.T) {
	s := newServer(t)

	status, body := s.do(http.MethodGet, "/user/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "missing authorization header", body["message"])

	status, body = s.do(http.MethodGet, "/user/me", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid or expired token", body["message"])

	status, body = s.do(http.MethodGet, "/appointments/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "error", body["status"])

	_, token := s.register("Bob", "bob@example.com")

	status, body = s.do(http.MethodPost, "/barbershop/appointment", token, map[string]any{
		"serviceId": "00000000-0000-0000-0000-000000000001",
		"startsAt":  "2026-11-02T10:00:00Z",
		"endsAt":    "2026-11-02T10:30:00Z",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "caller does not manage a barbershop", body["message"])

	rec := s.raw(http.MethodPost, "/barbershop", token, bytes.NewBufferString("{"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"invalid request body"}`, rec.Body.String())

	status, _ = s.do(http.MethodPost, "/user/register", "", map[string]any{
		"name":     "Bob again",
		"email":    "bob@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPasswordReset(t *testing.T) {
	s := newServer(t)
	s.register("Alice", "alice@example.com")

	status, _ := s.do(http.MethodPost, "/user/password/forgot", "", map[string]any{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, s.mails.count())

	status, _ = s.do(http.MethodPost, "/user/password/forgot", "", map[string]any{"email": "alice@example.com"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, s.mails.count())

	status, body := s.do(http.MethodPost, "/user/password/reset", "", map[string]any{
		"token":    "garbage",
		"password": "newpass123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "error", body["status"])
}

func TestHealthAndMetrics(t *testing.T) {
	s := newServer(t)

	status, body := s.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	rec := s.raw(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `barber_booking_http_requests_total{method="GET",path="/health",status="200"} 1`)
}
