package list_requests

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const msgInvalidFilter = "некорректные параметры фильтра"

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

// Handle GET /api/v1/requests
// Query params: view (queue|history), resourceId, status, paymentStatus, date, search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	listReq, err := ToListRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /requests - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	requests, err := h.service.List(r.Context(), listReq)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.logger.Warn("GET /requests - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /requests - Failed to list requests: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /requests - Requests listed: view=%s, count=%d", listReq.View, len(requests))
	handlers.RespondJSON(w, http.StatusOK, RequestsResponse{Requests: requests, Total: len(requests)})
}
