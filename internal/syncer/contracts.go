package syncer

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// RemoteLedger удаленный авторитетный реестр заявок
type RemoteLedger interface {
	FetchAll(ctx context.Context) ([]domain.Request, error)
	Create(ctx context.Context, request domain.Request) (*domain.Request, error)
	Patch(ctx context.Context, id string, patch domain.RequestPatch) (*domain.Request, error)
	AppendBooking(ctx context.Context, booking domain.Booking) error
}

// LocalStore локальное хранилище реестра под одним общим ключом.
// found=false означает, что ключ ни разу не записывался.
type LocalStore interface {
	Load(ctx context.Context) (requests []domain.Request, found bool, err error)
	Save(ctx context.Context, requests []domain.Request) error
}

// Snapshot статический снимок данных, последний уровень чтения
type Snapshot interface {
	Requests(ctx context.Context) ([]domain.Request, error)
}

// Ledger кэш реестра актора
type Ledger interface {
	Loaded() bool
	Replace(requests []domain.Request)
	Put(request domain.Request)
	Get(id string) (domain.Request, bool)
	Snapshot() []domain.Request
}

// Metrics счетчики синхронизации
type Metrics interface {
	IncSyncRefresh(tier string)
	IncSyncMirrorFailure(op string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopMetrics struct{}

func (noopMetrics) IncSyncRefresh(string)       {}
func (noopMetrics) IncSyncMirrorFailure(string) {}
