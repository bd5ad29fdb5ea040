package get_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	paymentsService "github.com/altosdelparque/ADP-BookingService/internal/service/payments"
)

const (
	msgInvalidPaymentID = "invalid payment id"
	msgPaymentNotFound  = "payment not found"
	msgAccessDenied     = "access denied"
)

// Handler GET /api/v1/payments/{paymentId}
type Handler struct {
	service PaymentsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service PaymentsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle serves the request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["paymentId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	p, err := h.service.GetByID(r.Context(), id, identity)
	if err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			handlers.RespondNotFound(w, msgPaymentNotFound)
		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("GET /payments/%d - access denied for user=%d", id, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /payments/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(p))
}
