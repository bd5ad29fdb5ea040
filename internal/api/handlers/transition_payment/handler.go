package transition_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	paymentsService "github.com/altosdelparque/ADP-BookingService/internal/service/payments"
	transitionPayment "github.com/altosdelparque/ADP-BookingService/internal/usecase/transition_payment"
)

const (
	msgInvalidPaymentID   = "invalid payment id"
	msgInvalidRequestBody = "invalid request body"
	msgPaymentNotFound    = "payment not found"
	msgAccessDenied       = "access denied"
	msgInvalidTransition  = "status transition not permitted"
	msgUnknownStatus      = "unknown payment status"
)

// Handler PUT /api/v1/payments/{paymentId}/status
type Handler struct {
	useCase TransitionPaymentUseCase
	reader  PaymentReader
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(useCase TransitionPaymentUseCase, reader PaymentReader, logger Logger) *Handler {
	return &Handler{useCase: useCase, reader: reader, logger: logger}
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

	var req TransitionPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /payments/%d/status - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Ownership guard: the read runs with the caller's identity before
	// the state machine is touched.
	if _, err := h.reader.GetByID(r.Context(), id, identity); err != nil {
		switch {
		case errors.Is(err, paymentsService.ErrPaymentNotFound):
			handlers.RespondNotFound(w, msgPaymentNotFound)
		case errors.Is(err, paymentsService.ErrAccessDenied):
			h.logger.Warn("PUT /payments/%d/status - access denied for user=%d", id, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("PUT /payments/%d/status - failed to fetch: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), &transitionPayment.Request{
		PaymentID:   id,
		NewStatusID: req.StatusID,
	})
	if err != nil {
		switch {
		case errors.Is(err, transitionPayment.ErrInvalidTransition):
			h.logger.Warn("PUT /payments/%d/status - invalid transition to %d", id, req.StatusID)
			handlers.RespondBadRequest(w, msgInvalidTransition)

		case errors.Is(err, transitionPayment.ErrPaymentNotFound):
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, transitionPayment.ErrUnknownStatus),
			errors.Is(err, transitionPayment.ErrInvalidInput):
			h.logger.Warn("PUT /payments/%d/status - invalid input: %v", id, err)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		default:
			h.logger.Error("PUT /payments/%d/status - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /payments/%d/status - transitioned to %d by user=%d", id, req.StatusID, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(result.Payment))
}
