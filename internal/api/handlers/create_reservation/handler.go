package create_reservation

import (
	"errors"
	"net/http"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	createReservation "github.com/altosdelparque/ADP-BookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimestamp   = "invalid timestamp, RFC3339 expected"
	msgForbiddenOwner     = "caller may not book for this owner"
	msgTimeConflict       = "time window conflicts with an existing reservation"
	msgOwnerNotFound      = "owner not found"
	msgResourceNotFound   = "resource not found"
	msgUnderMaintenance   = "resource is under maintenance"
	msgUnknownType        = "unknown reservation type"
	msgUnknownStatus      = "unknown reservation status"
)

// Handler POST /api/v1/reservations
type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle serves the request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Ownership guard: residents book only for themselves. The supplied
	// id may be an owner id or an account id, so both spaces are checked.
	if !identity.MayRequestFor(req.OwnerID) {
		h.logger.Warn("POST /reservations - user=%d may not book for owner=%d", identity.UserID, req.OwnerID)
		handlers.RespondForbidden(w, msgForbiddenOwner)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrTimeConflict):
			h.logger.Warn("POST /reservations - conflict: owner=%d, resource=%d", req.OwnerID, req.ResourceID)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, createReservation.ErrResourceUnderMaintenance):
			h.logger.Warn("POST /reservations - maintenance: resource=%d", req.ResourceID)
			handlers.RespondError(w, http.StatusConflict, msgUnderMaintenance)

		case errors.Is(err, createReservation.ErrUnknownOwner):
			h.logger.Warn("POST /reservations - owner not found: owner=%d", req.OwnerID)
			handlers.RespondBadRequest(w, msgOwnerNotFound)

		case errors.Is(err, createReservation.ErrResourceNotFound):
			h.logger.Warn("POST /reservations - resource not found: resource=%d", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createReservation.ErrUnknownType):
			h.logger.Warn("POST /reservations - unknown type: %s", req.Type)
			handlers.RespondBadRequest(w, msgUnknownType)

		case errors.Is(err, createReservation.ErrUnknownStatus):
			h.logger.Warn("POST /reservations - unknown status: %s", req.Status)
			handlers.RespondBadRequest(w, msgUnknownStatus)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - failed: owner=%d, resource=%d, error=%v",
				req.OwnerID, req.ResourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - created: reservation=%d, owner=%d, resource=%d",
		result.ID, result.OwnerID, result.ResourceID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
