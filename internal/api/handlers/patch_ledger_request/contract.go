package patch_ledger_request

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

type LedgerService interface {
	Patch(ctx context.Context, id string, patch domain.RequestPatch) (*domain.Request, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
