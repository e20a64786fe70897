package get_availability

import (
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

type AvailabilityService interface {
	Day(resourceID string, date types.Date) (*models.DayView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
