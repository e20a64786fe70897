package list_ledger

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type LedgerService interface {
	List(ctx context.Context) ([]domain.Request, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
