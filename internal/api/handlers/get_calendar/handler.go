package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	msgMissingMonth     = "месяц обязателен"
	msgInvalidMonth     = "некорректный формат месяца, ожидается YYYY-MM"
	msgResourceNotFound = "помещение не найдено"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/calendar
// Query params: month (required, YYYY-MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]

	monthStr := r.URL.Query().Get("month")
	if monthStr == "" {
		handlers.RespondBadRequest(w, msgMissingMonth)
		return
	}

	month, err := time.Parse(domain.MonthFormat, monthStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/calendar - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	view, err := h.service.Month(resourceID, month.Year(), month.Month())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownResource):
			h.logger.Warn("GET /resources/{id}/calendar - Resource not found: resource_id=%s", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, domain.ErrValidation):
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /resources/{id}/calendar - Failed to build month: resource_id=%s, month=%s, error=%v",
				resourceID, monthStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/calendar - Month built: resource_id=%s, month=%s", resourceID, view.Month)
	handlers.RespondJSON(w, http.StatusOK, view)
}
