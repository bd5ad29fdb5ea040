package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	reservationsService "github.com/altosdelparque/ADP-BookingService/internal/service/reservations"
	updateReservation "github.com/altosdelparque/ADP-BookingService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "invalid reservation id"
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidTimestamp     = "invalid timestamp, RFC3339 expected"
	msgReservationNotFound  = "reservation not found"
	msgAccessDenied         = "access denied"
	msgNotEditable          = "reservation can no longer be edited"
	msgTimeConflict         = "time window conflicts with an existing reservation"
	msgResourceNotFound     = "resource not found"
	msgUnderMaintenance     = "resource is under maintenance"
)

// Handler PUT /api/v1/reservations/{reservationId}
type Handler struct {
	useCase UpdateReservationUseCase
	reader  ReservationReader
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(useCase UpdateReservationUseCase, reader ReservationReader, logger Logger) *Handler {
	return &Handler{useCase: useCase, reader: reader, logger: logger}
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

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/%d - invalid request body: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Ownership guard: the read runs with the caller's identity, so a
	// resident touching another owner's reservation stops here.
	current, err := h.reader.GetByID(r.Context(), id, identity)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)
		case errors.Is(err, reservationsService.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/%d - access denied for user=%d", id, identity.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)
		default:
			h.logger.Error("PUT /reservations/%d - failed to fetch: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if !identity.IsAdmin() && !current.CanBeEditedByOwner() {
		h.logger.Warn("PUT /reservations/%d - not editable, status=%s", id, current.Status)
		handlers.RespondError(w, http.StatusConflict, msgNotEditable)
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.logger.Warn("PUT /reservations/%d - failed to parse request: %v", id, err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateReservation.Request{ID: id, Patch: patch})
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrTimeConflict):
			h.logger.Warn("PUT /reservations/%d - conflict", id)
			handlers.RespondError(w, http.StatusConflict, msgTimeConflict)

		case errors.Is(err, updateReservation.ErrResourceUnderMaintenance):
			handlers.RespondError(w, http.StatusConflict, msgUnderMaintenance)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrResourceNotFound):
			handlers.RespondBadRequest(w, msgResourceNotFound)

		case errors.Is(err, updateReservation.ErrUnknownType),
			errors.Is(err, updateReservation.ErrUnknownStatus),
			errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/%d - invalid input: %v", id, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /reservations/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/%d - updated by user=%d", id, identity.UserID)
	handlers.RespondJSON(w, http.StatusOK, UpdateReservationResponse{Updated: result.Affected})
}
