package list_resources

import (
	"errors"
	"net/http"
	"time"

	"github.com/altosdelparque/ADP-BookingService/internal/api/handlers"
	"github.com/altosdelparque/ADP-BookingService/internal/domain"
	resourcesService "github.com/altosdelparque/ADP-BookingService/internal/service/resources"
)

const (
	msgInvalidKind      = "invalid resource kind"
	msgInvalidWindow    = "invalid availability window, RFC3339 from/to expected"
	msgIncompleteWindow = "availability window needs both from and to"
)

// Handler GET /api/v1/resources
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
	query := r.URL.Query()

	var kind *domain.ResourceKind
	if raw := query.Get("kind"); raw != "" {
		k := domain.ResourceKind(raw)
		if k != domain.KindFacility && k != domain.KindParking {
			handlers.RespondBadRequest(w, msgInvalidKind)
			return
		}
		kind = &k
	}

	var from, to *time.Time
	rawFrom, rawTo := query.Get("from"), query.Get("to")
	if (rawFrom == "") != (rawTo == "") {
		handlers.RespondBadRequest(w, msgIncompleteWindow)
		return
	}
	if rawFrom != "" {
		f, err := time.Parse(time.RFC3339, rawFrom)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		t, err := time.Parse(time.RFC3339, rawTo)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidWindow)
			return
		}
		from, to = &f, &t
	}

	entries, err := h.service.List(r.Context(), kind, from, to)
	if err != nil {
		switch {
		case errors.Is(err, resourcesService.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("GET /resources - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromService(entries))
}
