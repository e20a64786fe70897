package availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Ledger источник одобренных заявок
type Ledger interface {
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

// Now возвращает текущее локальное время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
