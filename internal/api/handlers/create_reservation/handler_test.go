package create_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	"github.com/altosdelparque/ADP-BookingService/internal/integrations/identityservice"
	createReservation "github.com/altosdelparque/ADP-BookingService/internal/usecase/create_reservation"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
	got  *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeResolver struct {
	identities map[int64]*identityservice.Identity
}

func (f *fakeResolver) Resolve(_ context.Context, userID int64) (*identityservice.Identity, error) {
	id, ok := f.identities[userID]
	if !ok {
		return nil, identityservice.ErrIdentityNotFound
	}
	return id, nil
}

func newTestRouter(uc CreateReservationUseCase) *mux.Router {
	resolver := &fakeResolver{identities: map[int64]*identityservice.Identity{
		42: {UserID: 42, Role: domain.RoleResident, OwnerID: 7},
		1:  {UserID: 1, Role: domain.RoleAdmin},
	}}

	h := NewHandler(uc, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Identity(resolver, nopLogger{}))
	protected.HandleFunc("/reservations", h.Handle).Methods(http.MethodPost)
	return r
}

const validBody = `{
	"ownerId": 7,
	"resourceId": 3,
	"resourceKind": "FACILITY",
	"type": "GYM",
	"startTime": "2026-03-10T10:00:00Z",
	"endTime": "2026-03-10T12:00:00Z"
}`

func postReservation(t *testing.T, router *mux.Router, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:           101,
		ResourceID:   3,
		ResourceKind: domain.KindFacility,
		Type:         domain.TypeGym,
		Status:       domain.StatusPending,
		OwnerID:      7,
		StartTime:    start,
		EndTime:      start.Add(2 * time.Hour),
	}}
	router := newTestRouter(uc)

	rec := postReservation(t, router, validBody, "42")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":101`)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(7), uc.got.OwnerID)
	assert.Equal(t, start, uc.got.StartTime)
}

func TestHandle_MissingIdentityHeader(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	rec := postReservation(t, router, validBody, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ForeignOwnerForbidden(t *testing.T) {
	uc := &fakeUseCase{}
	router := newTestRouter(uc)

	body := strings.Replace(validBody, `"ownerId": 7`, `"ownerId": 8`, 1)
	rec := postReservation(t, router, body, "42")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Nil(t, uc.got, "use case never runs for a foreign owner")
}

func TestHandle_AdminMayBookForAnyone(t *testing.T) {
	start := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID: 102, OwnerID: 8, StartTime: start, EndTime: start.Add(time.Hour),
	}}
	router := newTestRouter(uc)

	body := strings.Replace(validBody, `"ownerId": 7`, `"ownerId": 8`, 1)
	rec := postReservation(t, router, body, "1")

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestHandle_ConflictMapsTo409(t *testing.T) {
	router := newTestRouter(&fakeUseCase{err: createReservation.ErrTimeConflict})

	rec := postReservation(t, router, validBody, "42")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_MaintenanceMapsTo409(t *testing.T) {
	router := newTestRouter(&fakeUseCase{err: createReservation.ErrResourceUnderMaintenance})

	rec := postReservation(t, router, validBody, "42")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_UnknownCaller(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	rec := postReservation(t, router, validBody, "777")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_BadTimestamp(t *testing.T) {
	router := newTestRouter(&fakeUseCase{})

	body := strings.Replace(validBody, "2026-03-10T10:00:00Z", "yesterday", 1)
	rec := postReservation(t, router, body, "42")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
