package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	reservationsService "github.com/altosdelparque/ADP-BookingService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgReservationNotFound  = "reservation not found"
	msgAccessDenied         = "only administrators may delete reservations"
)

// Handler DELETE /api/v1/reservations/{reservationId}
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

	if err := h.service.Delete(r.Context(), id, identity); err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/%d - access denied for user=%d", id, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /reservations/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /reservations/%d - deleted by user=%d", id, identity.UserID)
	w.WriteHeader(http.StatusNoContent)
}
