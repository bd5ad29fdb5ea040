package get_resource

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	resourcesService "github.com/altosdelparque/ADP-BookingService/internal/service/resources"
)

const (
	msgInvalidResourceID = "invalid resource id"
	msgResourceNotFound  = "resource not found"
)

// Handler GET /api/v1/resources/{resourceId}
type Handler struct {
	service ResourcesService
	logger  Logger
}

// NewHandler creates the handler.
func NewHandler(service ResourcesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Handle serves the request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["resourceId"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	res, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, resourcesService.ErrResourceNotFound):
			handlers.RespondNotFound(w, msgResourceNotFound)
		default:
			h.logger.Error("GET /resources/%d - failed: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(res))
}
