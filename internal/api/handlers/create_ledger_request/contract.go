package create_ledger_request

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type LedgerService interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
