package get_owner_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	ownerRepo "github.com/altosdelparque/ADP-BookingService/internal/infra/storage/owner"
	reservationsService "github.com/altosdelparque/ADP-BookingService/internal/service/reservations"
)

const (
	msgInvalidOwnerID = "invalid owner id"
	msgOwnerNotFound  = "owner not found"
	msgAccessDenied   = "access denied"
)

// Handler GET /api/v1/owners/{ownerId}/reservations
type Handler struct {
	service  ReservationsService
	resolver OwnerResolver
	logger   Logger
}

// NewHandler creates the handler.
func NewHandler(service ReservationsService, resolver OwnerResolver, logger Logger) *Handler {
	return &Handler{service: service, resolver: resolver, logger: logger}
}

// Handle serves the request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	rawID, err := strconv.ParseInt(mux.Vars(r)["ownerId"], 10, 64)
	if err != nil || rawID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidOwnerID)
		return
	}

	// Ownership guard runs against the raw path id, which may live in
	// either id space.
	if !identity.MayRequestFor(rawID) {
		h.logger.Warn("GET /owners/%d/reservations - access denied for user=%d", rawID, identity.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	owner, err := h.resolver.Resolve(r.Context(), rawID)
	if err != nil {
		if errors.Is(err, ownerRepo.ErrOwnerNotFound) {
			h.logger.Warn("GET /owners/%d/reservations - owner not found", rawID)
			handlers.RespondNotFound(w, msgOwnerNotFound)
			return
		}
		h.logger.Error("GET /owners/%d/reservations - failed to resolve owner: %v", rawID, err)
		handlers.RespondInternalError(w)
		return
	}

	filter := domain.OwnerReservationsFilter{OwnerID: owner.ID}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.ReservationStatus(raw)
		filter.Status = &status
	}
	if r.URL.Query().Get("includeInactive") == "true" {
		filter.IncludeInactive = true
	}

	reservations, err := h.service.GetOwnerReservations(r.Context(), filter, identity)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrAccessDenied):
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("GET /owners/%d/reservations - failed: %v", rawID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(owner.ID, reservations))
}
