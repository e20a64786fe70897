package ledgerapi

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// ListResponse ответ GET /requests
type ListResponse struct {
	Requests []domain.Request `json:"requests"`
}

// RequestEnvelope ответ POST /requests и PATCH /requests/{id}
type RequestEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Request *domain.Request `json:"request,omitempty"`
}

// BookingEnvelope ответ POST /bookings
type BookingEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Booking *domain.Booking `json:"booking,omitempty"`
}
