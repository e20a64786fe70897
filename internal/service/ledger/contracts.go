package ledger

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// RequestRepository интерфейс репозитория заявок
type RequestRepository interface {
	List(ctx context.Context) ([]domain.Request, error)
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	GetByID(ctx context.Context, id string, forUpdate bool) (*domain.Request, error)
	Update(ctx context.Context, req *domain.Request) (*domain.Request, error)
}

// BookingRepository интерфейс журнала бронирований
type BookingRepository interface {
	Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// IDGenerator выдает id для заявок, пришедших без него
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
