package get_day_bookings

import (
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/bookings
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	bookings, err := h.service.ApprovedOn(r.Context(), date)
	if err != nil {
		h.logger.Warn("GET /bookings - Failed to list bookings: date=%s, error=%v", date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	h.logger.Info("GET /bookings - Bookings listed: date=%s, count=%d", date, len(bookings))
	handlers.RespondJSON(w, http.StatusOK, DayBookingsResponse{Date: date, Bookings: bookings})
}
