package append_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/ledgerapi"
)

const (
	msgInvalidRequestBody = "Invalid booking body"
	msgSaved              = "Booking saved successfully"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var booking domain.Booking
	if err := handlers.DecodeJSON(r, &booking); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, ledgerapi.BookingEnvelope{Message: msgInvalidRequestBody})
		return
	}

	saved, err := h.service.AppendBooking(r.Context(), &booking)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			handlers.RespondJSON(w, http.StatusBadRequest, ledgerapi.BookingEnvelope{Message: msgInvalidRequestBody})
			return
		}
		h.logger.Error("POST /bookings - Failed to append booking: booking_id=%s, error=%v", booking.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, ledgerapi.BookingEnvelope{Success: true, Message: msgSaved, Booking: saved})
}
