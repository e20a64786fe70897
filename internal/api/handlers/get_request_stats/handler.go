package get_request_stats

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
)

type Handler struct {
	service RequestsService
	logger  Logger
}

func NewHandler(service RequestsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/requests/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats(r.Context())

	h.logger.Info("GET /requests/stats - Stats built: total=%d, pending=%d", stats.Total, stats.Pending)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
