package get_day_bookings

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// DayBookingsResponse одобренные бронирования дня по всем помещениям
type DayBookingsResponse struct {
	Date     types.Date       `json:"date"`
	Bookings []domain.Request `json:"bookings"`
}
