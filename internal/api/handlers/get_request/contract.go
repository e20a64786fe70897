package get_request

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type RequestsService interface {
	Get(ctx context.Context, id string) (*domain.Request, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
