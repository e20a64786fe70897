package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

// ErrResourceNotFound возвращается для неизвестного id ресурса
var ErrResourceNotFound = fmt.Errorf("catalog: %w", domain.ErrUnknownResource)

// ResourceSource внешний источник справочника ресурсов (статический снимок)
type ResourceSource interface {
	Resources(ctx context.Context) ([]domain.Resource, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service неизменяемый справочник ресурсов, загружается один раз при старте
type Service struct {
	resources []domain.Resource
	byID      map[string]int
}

// DefaultResources встроенный список на случай отсутствия снимка и конфигурации
func DefaultResources() []domain.Resource {
	weekend := domain.WeeklyAvailabilityRule{ClosedWeekdays: []string{"saturday", "sunday"}}
	return []domain.Resource{
		{ID: "auditorium", Name: "Auditorium", Capacity: 1000},
		{ID: "library", Name: "Library", Capacity: 100},
		{ID: "grounds", Name: "Grounds", Capacity: 1800, WeeklyAvailabilityRule: weekend},
		{ID: "avr", Name: "AVR", Capacity: 150},
		{ID: "gym", Name: "Gym", Capacity: 2000},
	}
}

// NewService создает справочник из готового списка. Некорректные записи отбрасываются.
func NewService(resources []domain.Resource) *Service {
	s := &Service{
		resources: make([]domain.Resource, 0, len(resources)),
		byID:      make(map[string]int, len(resources)),
	}
	for _, r := range resources {
		if r.ID == "" || r.Capacity <= 0 {
			continue
		}
		if _, dup := s.byID[r.ID]; dup {
			continue
		}
		s.byID[r.ID] = len(s.resources)
		s.resources = append(s.resources, r)
	}
	return s
}

// Load читает справочник из source. Если источник недоступен или пуст, используется fallback,
// а если пуст и он, то встроенный список.
func Load(ctx context.Context, source ResourceSource, fallback []domain.Resource, logger Logger) *Service {
	if source != nil {
		resources, err := source.Resources(ctx)
		switch {
		case err != nil:
			logger.Warn("Catalog: failed to load resources from snapshot: %v", err)
		case len(resources) == 0:
			logger.Warn("Catalog: snapshot has no resources")
		default:
			s := NewService(resources)
			logger.Info("Catalog: loaded %d resources from snapshot", len(s.resources))
			return s
		}
	}

	if len(fallback) > 0 {
		logger.Info("Catalog: using %d resources from config", len(fallback))
		return NewService(fallback)
	}

	logger.Warn("Catalog: using built-in resource list")
	return NewService(DefaultResources())
}

// Get returns the resource with id
func (s *Service) Get(id string) (*domain.Resource, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: id=%q", ErrResourceNotFound, id)
	}
	r := s.resources[i]
	return &r, nil
}

// List returns all resources ordered by name
func (s *Service) List() []domain.Resource {
	out := make([]domain.Resource, len(s.resources))
	copy(out, s.resources)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// IsNotFound reports whether err is an unknown resource error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrResourceNotFound)
}
