package get_request_stats

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/service/requests/models"
)

type RequestsService interface {
	Stats(ctx context.Context) *models.Stats
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
