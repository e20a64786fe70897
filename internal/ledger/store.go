package ledger

import (
	"sync"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Store кэш реестра заявок одного актора.
// Порядок заявок сохраняется: новые добавляются в конец, обновления меняют запись на месте.
type Store struct {
	mu       sync.RWMutex
	requests []domain.Request
	index    map[string]int
	loaded   bool
}

// NewStore создает пустой, еще не загруженный реестр
func NewStore() *Store {
	return &Store{
		requests: make([]domain.Request, 0),
		index:    make(map[string]int),
	}
}

// Loaded returns true once any data source has populated the store
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Replace заменяет весь реестр целиком. Дубликаты id схлопываются, побеждает последняя запись.
func (s *Store) Replace(requests []domain.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = make([]domain.Request, 0, len(requests))
	s.index = make(map[string]int, len(requests))
	for _, r := range requests {
		s.putLocked(r)
	}
	s.loaded = true
}

// Put вставляет новую заявку или заменяет существующую с тем же id
func (s *Store) Put(r domain.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putLocked(r)
}

func (s *Store) putLocked(r domain.Request) {
	if i, ok := s.index[r.ID]; ok {
		s.requests[i] = r.Clone()
		return
	}
	s.index[r.ID] = len(s.requests)
	s.requests = append(s.requests, r.Clone())
}

// Get returns a copy of the request with id
func (s *Store) Get(id string) (domain.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return domain.Request{}, false
	}
	return s.requests[i].Clone(), true
}

// Snapshot returns a copy of the whole ledger in stable order
func (s *Store) Snapshot() []domain.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Request, len(s.requests))
	for i, r := range s.requests {
		out[i] = r.Clone()
	}
	return out
}

// ApprovedOn returns approved requests for resource and date in ledger order
func (s *Store) ApprovedOn(resourceID string, date types.Date) []domain.Request {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Request, 0)
	for _, r := range s.requests {
		if r.IsApproved() && r.IsOn(resourceID, date) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Len returns the number of cached requests
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.requests)
}
