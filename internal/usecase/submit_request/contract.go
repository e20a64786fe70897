package submit_request

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// LedgerWriter слой синхронизации, через который создается заявка
type LedgerWriter interface {
	Create(ctx context.Context, build func() (domain.Request, error)) (domain.Request, error)
}

// ConflictDetector поиск пересечений с одобренными заявками
type ConflictDetector interface {
	FindConflict(resourceID string, date types.Date, candidate domain.Interval) (*domain.Request, bool)
}

// ResourceCatalog справочник ресурсов
type ResourceCatalog interface {
	Get(id string) (*domain.Resource, error)
}

// IDGenerator генератор идентификаторов заявок
type IDGenerator interface {
	NewID() string
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
