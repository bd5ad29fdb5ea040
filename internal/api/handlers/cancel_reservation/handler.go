package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	reservationsService "github.com/altosdelparque/ADP-BookingService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgReservationNotFound  = "reservation not found"
	msgAccessDenied         = "access denied"
	msgCannotCancel         = "reservation cannot be cancelled in its current status"
)

// Handler PATCH /api/v1/reservations/{reservationId}/cancel
type Handler struct {
	service ReservationsService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle serves the request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["reservationId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/%d/cancel - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Cancel(r.Context(), id, req.CancellationReason, identity); err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/%d/cancel - access denied for user=%d", id, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, reservationsService.ErrCannotCancel):
			h.logger.Warn("PATCH /reservations/%d/cancel - not cancellable", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, reservationsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /reservations/%d/cancel - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/%d/cancel - cancelled by user=%d", id, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, CancelReservationResponse{
		ID:     id,
		Status: string(domain.StatusCancelled),
	})
}
