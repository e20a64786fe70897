package append_booking

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type LedgerService interface {
	AppendBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
