package resolve_request

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type RequestsService interface {
	Accept(ctx context.Context, id string) (*domain.Request, error)
	Reject(ctx context.Context, id string) (*domain.Request, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
