package refresh_sync

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const msgDataUnavailable = "данные о бронированиях недоступны: ни один источник не ответил"

type Handler struct {
	syncer Syncer
	logger Logger
}

func NewHandler(syncer Syncer, logger Logger) *Handler {
	return &Handler{
		syncer: syncer,
		logger: logger,
	}
}

// Refresh POST /api/v1/sync/refresh: внеочередное обновление (фокус окна, возврат на вкладку)
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	tier, err := h.syncer.Refresh(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrDataUnavailable) {
			h.logger.Warn("POST /sync/refresh - Data unavailable")
			handlers.RespondError(w, http.StatusServiceUnavailable, msgDataUnavailable)
			return
		}
		h.logger.Error("POST /sync/refresh - Refresh failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sync/refresh - Refreshed from tier=%s", tier)
	handlers.RespondJSON(w, http.StatusOK, h.syncer.Status())
}

// Status GET /api/v1/sync/status
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.syncer.Status())
}
