package transition_payment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	"github.com/altosdelparque/ADP-BookingService/internal/integrations/identityservice"
	paymentsService "github.com/altosdelparque/ADP-BookingService/internal/service/payments"
	transitionPayment "github.com/altosdelparque/ADP-BookingService/internal/usecase/transition_payment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	resp *transitionPayment.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *transitionPayment.Request) (*transitionPayment.Response, error) {
	return f.resp, f.err
}

type fakeReader struct {
	payment *domain.Payment
}

func (f *fakeReader) GetByID(_ context.Context, _ int64, caller domain.Identity) (*domain.Payment, error) {
	if f.payment == nil {
		return nil, paymentsService.ErrPaymentNotFound
	}
	if !caller.MayActOn(f.payment.OwnerID) {
		return nil, paymentsService.ErrAccessDenied
	}
	return f.payment, nil
}

type fakeResolver struct{}

func (fakeResolver) Resolve(_ context.Context, userID int64) (*identityservice.Identity, error) {
	switch userID {
	case 42:
		return &identityservice.Identity{UserID: 42, Role: domain.RoleResident, OwnerID: 7}, nil
	case 1:
		return &identityservice.Identity{UserID: 1, Role: domain.RoleAdmin}, nil
	}
	return nil, identityservice.ErrIdentityNotFound
}

func newTestRouter(uc TransitionPaymentUseCase, reader PaymentReader) *mux.Router {
	h := NewHandler(uc, reader, nopLogger{})

	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Identity(fakeResolver{}, nopLogger{}))
	protected.HandleFunc("/payments/{paymentId}/status", h.Handle).Methods(http.MethodPut)
	return r
}

func putStatus(t *testing.T, router *mux.Router, paymentID, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/payments/"+paymentID+"/status", strings.NewReader(body))
	req.Header.Set("X-User-ID", userID)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func ownedPayment() *domain.Payment {
	return &domain.Payment{
		ID:       6,
		OwnerID:  7,
		StatusID: domain.PaymentCompleted,
		Method:   "transfer",
		Date:     time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestHandle_InvalidTransitionMapsTo400(t *testing.T) {
	router := newTestRouter(
		&fakeUseCase{err: transitionPayment.ErrInvalidTransition},
		&fakeReader{payment: ownedPayment()},
	)

	rec := putStatus(t, router, "6", `{"statusId": 1}`, "42")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Transitioned(t *testing.T) {
	p := ownedPayment()
	p.StatusID = domain.PaymentProcessing
	router := newTestRouter(
		&fakeUseCase{resp: &transitionPayment.Response{Payment: p}},
		&fakeReader{payment: ownedPayment()},
	)

	rec := putStatus(t, router, "6", `{"statusId": 2}`, "42")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"statusId":2`)
}

func TestHandle_ForeignPaymentForbidden(t *testing.T) {
	p := ownedPayment()
	p.OwnerID = 8
	router := newTestRouter(&fakeUseCase{}, &fakeReader{payment: p})

	rec := putStatus(t, router, "6", `{"statusId": 2}`, "42")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandle_PaymentNotFound(t *testing.T) {
	router := newTestRouter(&fakeUseCase{}, &fakeReader{})

	rec := putStatus(t, router, "6", `{"statusId": 2}`, "1")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
