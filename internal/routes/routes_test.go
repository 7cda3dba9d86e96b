package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-frontdesk/internal/cache"
	"github.com/BruksfildServices01/barber-frontdesk/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-frontdesk/internal/db"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/employee"
	"github.com/BruksfildServices01/barber-frontdesk/internal/domain/frontdesk"
	"github.com/BruksfildServices01/barber-frontdesk/internal/handlers"
	"github.com/BruksfildServices01/barber-frontdesk/internal/infra/memstore"
	"github.com/BruksfildServices01/barber-frontdesk/internal/infra/repository"
	"github.com/BruksfildServices01/barber-frontdesk/internal/middleware"
	"github.com/BruksfildServices01/barber-frontdesk/internal/session"
	"github.com/BruksfildServices01/barber-frontdesk/internal/timezone"
)

type okResolver struct{}

func (okResolver) LookupMX(context.Context, string) ([]*net.MX, error) {
	return []*net.MX{{Host: "mx.example.com."}}, nil
}

func (okResolver) LookupIPAddr(context.Context, string) ([]net.IPAddr, error) {
	return nil, nil
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := dbpkg.Open(dbpkg.DriverSQLite, ":memory:")
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{
		JWTSecret:          "test-secret",
		Timezone:           timezone.DefaultTimezone,
		SettingsUser:       "admin",
		SettingsPassword:   "admin",
		SettingsSessionTTL: 30 * time.Minute,
	}

	require.NoError(t, handlers.EnsureBootstrapAccount(
		context.Background(),
		repository.NewAccountGormRepository(db),
		"owner@barbearia.com",
		"s3cret",
		zap.NewNop(),
	))

	loc := timezone.Location(cfg.Timezone)
	clock := timezone.FixedClock(time.Date(2026, 3, 10, 12, 0, 0, 0, loc))

	store := memstore.New(frontdesk.Snapshot{
		Employees: []employee.Employee{{ID: "1", Name: "Ana"}},
	})

	r := gin.New()
	RegisterRoutes(r, Deps{
		Config:      cfg,
		DB:          db,
		Store:       store,
		Sessions:    session.NewMemoryStore(clock),
		ReportCache: cache.NopReportCache{},
		Resolver:    okResolver{},
		Clock:       clock,
		Log:         zap.NewNop(),
	})

	return &testServer{t: t, engine: r}
}

func (s *testServer) do(method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	s.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login() map[string]string {
	s.t.Helper()

	w := s.do(http.MethodPost, "/api/auth/login", gin.H{
		"email":    "owner@barbearia.com",
		"password": "s3cret",
	}, nil)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var out struct {
		Token string `json:"token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &out))
	require.NotEmpty(s.t, out.Token)

	return map[string]string{"Authorization": "Bearer " + out.Token}
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_RejectsMissingTokenAndBadPassword(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/me/dashboard", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/auth/login", gin.H{
		"email":    "owner@barbearia.com",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestAppointmentFlow(t *testing.T) {
	s := newTestServer(t)
	auth := s.login()

	// create with implicit client
	w := s.do(http.MethodPost, "/api/me/appointments", gin.H{
		"client_name":   "João Silva",
		"client_phone":  "11999990000",
		"employee_name": "Ana",
		"date":          "2026-03-10",
		"hour":          15,
		"minute":        30,
	}, auth)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[struct {
		Appointment struct {
			ID string `json:"id"`
		} `json:"appointment"`
		ClientCreated bool `json:"client_created"`
	}](t, w)
	assert.True(t, created.ClientCreated)
	id := created.Appointment.ID

	// agenda of the day
	w = s.do(http.MethodGet, "/api/me/appointments?date=2026-03-10", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	agenda := decode[struct {
		Appointments []struct {
			ID string `json:"id"`
		} `json:"appointments"`
		NextID    string `json:"next_id"`
		Remaining int    `json:"remaining"`
	}](t, w)
	require.Len(t, agenda.Appointments, 1)
	assert.Equal(t, id, agenda.NextID)
	assert.Equal(t, 1, agenda.Remaining)

	// checkpoint with a price, unpaid
	w = s.do(http.MethodPatch, "/api/me/appointments/"+id+"/checkpoint", gin.H{
		"price":  "45",
		"status": "COMPLETED",
	}, auth)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/me/dashboard?date=2026-03-10", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	dash := decode[struct {
		Stats struct {
			TotalAppointments     int    `json:"total_appointments"`
			CompletedAppointments int    `json:"completed_appointments"`
			TotalRevenue          string `json:"total_revenue"`
			PendingPayment        string `json:"pending_payment"`
		} `json:"stats"`
	}](t, w)
	assert.Equal(t, 1, dash.Stats.TotalAppointments)
	assert.Equal(t, 1, dash.Stats.CompletedAppointments)
	assert.Equal(t, "0", dash.Stats.TotalRevenue)
	assert.Equal(t, "45", dash.Stats.PendingPayment)

	// quick toggle marks it paid with the default method
	w = s.do(http.MethodPatch, "/api/me/appointments/"+id+"/toggle-payment", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	toggled := decode[struct {
		IsPaid        bool   `json:"is_paid"`
		Status        string `json:"status"`
		PaymentMethod string `json:"payment_method"`
	}](t, w)
	assert.True(t, toggled.IsPaid)
	assert.Equal(t, "COMPLETED", toggled.Status)
	assert.Equal(t, "PIX", toggled.PaymentMethod)

	w = s.do(http.MethodGet, "/api/me/financial?year=2026", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	fin := decode[struct {
		AnnualRevenue  string `json:"annual_revenue"`
		AnnualServices int    `json:"annual_services"`
	}](t, w)
	assert.Equal(t, "45", fin.AnnualRevenue)
	assert.Equal(t, 1, fin.AnnualServices)

	w = s.do(http.MethodPatch, "/api/me/appointments/missing/toggle-payment", nil, auth)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFinancial_InvalidYear(t *testing.T) {
	s := newTestServer(t)
	auth := s.login()

	w := s.do(http.MethodGet, "/api/me/financial?year=abc", nil, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/me/financial?year=1500", nil, auth)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_year")
}

func TestSettingsGate(t *testing.T) {
	s := newTestServer(t)
	auth := s.login()

	w := s.do(http.MethodPost, "/api/me/settings/employees", gin.H{"name": "Bea"}, auth)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodPost, "/api/me/settings/login", gin.H{
		"username": "admin",
		"password": "nope",
	}, auth)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Acesso Negado")

	w = s.do(http.MethodPost, "/api/me/settings/login", gin.H{
		"username": "admin",
		"password": "admin",
	}, auth)
	require.Equal(t, http.StatusOK, w.Code)
	sess := decode[struct {
		Token string `json:"token"`
	}](t, w)

	gated := map[string]string{
		"Authorization":                  auth["Authorization"],
		middleware.SettingsSessionHeader: sess.Token,
	}

	w = s.do(http.MethodPost, "/api/me/settings/employees", gin.H{"name": "Bea"}, gated)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodGet, "/api/public/employees", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Data []struct {
			Name string `json:"name"`
		} `json:"data"`
		Total int `json:"total"`
	}](t, w)
	assert.Equal(t, 2, list.Total)

	w = s.do(http.MethodPost, "/api/me/settings/logout", nil, gated)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(http.MethodDelete, "/api/me/settings/employees/1", nil, gated)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAccessRequests(t *testing.T) {
	s := newTestServer(t)

	body := gin.H{"name": "Carla", "email": "Carla@Example.com", "phone": "(11) 98888-7777"}

	w := s.do(http.MethodPost, "/api/access-requests", body, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodPost, "/api/access-requests", body, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	auth := s.login()
	w = s.do(http.MethodGet, "/api/me/access-requests?status=pending", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "carla@example.com")
}

func TestPublicBooking(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/public/appointments", gin.H{
		"client_name": "Marcos",
		"date":        "2026-03-11",
		"hour":        9,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	auth := s.login()
	w = s.do(http.MethodGet, "/api/me/clients/suggestions?query=mar", nil, auth)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Marcos")
}
