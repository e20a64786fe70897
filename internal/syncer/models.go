package syncer

import (
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// Tier источник, из которого загружен реестр
type Tier string

const (
	TierRemote   Tier = "remote"
	TierLocal    Tier = "local"
	TierSnapshot Tier = "snapshot"
	TierCache    Tier = "cache" // все источники недоступны, остался текущий кэш
)

// Mirror operations, used as metric labels
const (
	opCreate  = "create"
	opPatch   = "patch"
	opBooking = "booking"
	opPersist = "persist"
)

// Config параметры синхронизации
type Config struct {
	PollInterval time.Duration // период опроса, по умолчанию 30s
	CallTimeout  time.Duration // таймаут одного обращения к удаленному реестру
}

const (
	DefaultPollInterval = 30 * time.Second
	DefaultCallTimeout  = 5 * time.Second
)

// Status состояние синхронизации для диагностики
type Status struct {
	Tier          Tier      `json:"tier"`
	LastRefreshAt time.Time `json:"lastRefreshAt"`
	Requests      int       `json:"requests"`
	Unmirrored    int       `json:"unmirrored"`
}

// pendingWrite локальная запись, еще не доставленная в удаленный реестр.
// Хранит актуальную локальную версию заявки и список недоставленных операций.
type pendingWrite struct {
	request domain.Request
	create  bool
	patch   *domain.RequestPatch
	booking bool
}

func (w *pendingWrite) done() bool {
	return !w.create && w.patch == nil && !w.booking
}
