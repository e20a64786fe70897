package check_conflict

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

type ConflictDetector interface {
	FindConflict(resourceID string, date types.Date, candidate domain.Interval) (*domain.Request, bool)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
