package reserve_parking

import (
	"errors"
	"net/http"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/api/middleware"
	reserveParking "github.com/altosdelparque/ADP-BookingService/internal/usecase/reserve_parking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimestamp   = "invalid timestamp, RFC3339 expected"
	msgForbiddenUser      = "caller may not reserve parking for this user"
	msgSpotNotFound       = "parking spot not found"
	msgNotAParkingSpot    = "resource is not a parking spot"
	msgSpotNotAvailable   = "parking spot is not available"
	msgUnknownUser        = "user not found"
	msgUnknownVehicleType = "unknown vehicle type"
)

// Handler POST /api/v1/parking/reserve
type Handler struct {
	useCase ReserveParkingUseCase
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(useCase ReserveParkingUseCase, logger Logger) *Handler {
	return &Handler{useCase: useCase, logger: logger}
}

// Handle serves the request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "missing identity")
		return
	}

	var req ReserveParkingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /parking/reserve - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Ownership guard: residents assign spots only to themselves.
	if !identity.MayRequestFor(req.UserID) {
		h.logger.Warn("POST /parking/reserve - user=%d may not assign to user=%d", identity.UserID, req.UserID)
		handlers.RespondForbidden(w, msgForbiddenUser)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /parking/reserve - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, reserveParking.ErrSpotNotAvailable),
			errors.Is(err, reserveParking.ErrSpotClaimLost):
			h.logger.Warn("POST /parking/reserve - spot=%d unavailable: %v", req.ParkingID, err)
			handlers.RespondError(w, http.StatusConflict, msgSpotNotAvailable)

		case errors.Is(err, reserveParking.ErrSpotNotFound):
			h.logger.Warn("POST /parking/reserve - spot=%d not found", req.ParkingID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, reserveParking.ErrNotAParkingSpot):
			h.logger.Warn("POST /parking/reserve - resource=%d is not a parking spot", req.ParkingID)
			handlers.RespondBadRequest(w, msgNotAParkingSpot)

		case errors.Is(err, reserveParking.ErrUnknownUser):
			handlers.RespondBadRequest(w, msgUnknownUser)

		case errors.Is(err, reserveParking.ErrUnknownVehicleType):
			handlers.RespondBadRequest(w, msgUnknownVehicleType)

		case errors.Is(err, reserveParking.ErrInvalidInput):
			h.logger.Warn("POST /parking/reserve - invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /parking/reserve - failed: spot=%d, user=%d, error=%v",
				req.ParkingID, req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /parking/reserve - reserved: reservation=%d, spot=%d, user=%d, days=%d",
		result.ReservationID, result.ParkingID, result.UserID, result.DurationDays)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
