package requests

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// LedgerWriter слой синхронизации, через который проходят все изменения реестра
type LedgerWriter interface {
	Update(ctx context.Context, id string, change func(current domain.Request) (domain.RequestPatch, error)) (domain.Request, error)
	Replace(ctx context.Context, id string, build func(current domain.Request) (domain.Request, error)) (domain.Request, error)
}

// LedgerReader кэш реестра актора
type LedgerReader interface {
	Get(id string) (domain.Request, bool)
	Snapshot() []domain.Request
	ApprovedOn(resourceID string, date types.Date) []domain.Request
}

// ResourceCatalog справочник ресурсов
type ResourceCatalog interface {
	Get(id string) (*domain.Resource, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
