package get_resources

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

type Handler struct {
	catalog ResourceCatalog
	logger  Logger
}

func NewHandler(catalog ResourceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resources := h.catalog.List()

	h.logger.Info("GET /resources - Resources listed: count=%d", len(resources))
	handlers.RespondJSON(w, http.StatusOK, ResourcesResponse{Resources: resources})
}
