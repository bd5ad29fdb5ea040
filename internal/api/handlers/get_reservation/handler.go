package get_reservation

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
	msgAccessDenied         = "access denied"
)

// Handler GET /api/v1/reservations/{reservationId}
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

	res, err := h.service.GetByID(r.Context(), id, identity)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("GET /reservations/%d - access denied for user=%d", id, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /reservations/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(res))
}
