package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	Month(resourceID string, year int, month time.Month) (*models.MonthView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
