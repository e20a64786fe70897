package refresh_sync

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/syncer"
)

type Syncer interface {
	Refresh(ctx context.Context) (syncer.Tier, error)
	Status() syncer.Status
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
