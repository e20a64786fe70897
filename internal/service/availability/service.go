package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Service проекция занятости слотов по реестру заявок.
// Состояния не хранит: каждый вызов читает текущий реестр, поэтому после синхронизации
// следующая проекция уже учитывает новые данные.
type Service struct {
	ledger       Ledger
	resources    ResourceCatalog
	window       domain.DayWindow
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр проектора доступности
func NewService(
	ledger Ledger,
	resources ResourceCatalog,
	window domain.DayWindow,
	logger Logger,
) *Service {
	return &Service{
		ledger:       ledger,
		resources:    resources,
		window:       window,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Window returns the bookable day window
func (s *Service) Window() domain.DayWindow {
	return s.window
}

// Today returns the current local day
func (s *Service) Today() types.Date {
	return types.DateOf(s.timeProvider.Now())
}

// SlotsForDay returns the fixed slot sequence of a day
func (s *Service) SlotsForDay() []domain.Interval {
	return s.window.SlotsForDay()
}

// OccupiedSlots слоты, пересекающиеся хотя бы с одной одобренной заявкой.
// Для закрытого дня заняты все слоты.
func (s *Service) OccupiedSlots(resourceID string, date types.Date) ([]domain.Interval, error) {
	day, err := s.Day(resourceID, date)
	if err != nil {
		return nil, err
	}
	return day.Occupied(), nil
}

// FreeSlots дополнение OccupiedSlots до SlotsForDay
func (s *Service) FreeSlots(resourceID string, date types.Date) ([]domain.Interval, error) {
	day, err := s.Day(resourceID, date)
	if err != nil {
		return nil, err
	}
	return day.Free(), nil
}

// Density класс загруженности дня по одобренным заявкам
func (s *Service) Density(resourceID string, date types.Date) (domain.Density, error) {
	if _, err := s.resources.Get(resourceID); err != nil {
		s.logger.Warn("Density: resource=%s: %v", resourceID, err)
		return "", err
	}
	return s.density(resourceID, date), nil
}

// DayStatus доступность дня для новых заявок: прошедший день, закрытый по правилу ресурса или открытый
func (s *Service) DayStatus(resource *domain.Resource, date types.Date) domain.DayStatus {
	if date.Before(s.Today()) {
		return domain.DayPast
	}
	if resource.IsClosedOn(date) {
		return domain.DayClosed
	}
	return domain.DayOpen
}

// Day строит полную проекцию дня: слоты с занятостью, класс загруженности и статус дня
func (s *Service) Day(resourceID string, date types.Date) (*models.DayView, error) {
	if err := date.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	resource, err := s.resources.Get(resourceID)
	if err != nil {
		s.logger.Warn("Day: resource=%s: %v", resourceID, err)
		return nil, err
	}

	approved := s.ledger.ApprovedOn(resourceID, date)
	status := s.DayStatus(resource, date)
	closed := resource.IsClosedOn(date)
	if closed {
		s.logger.Info("Day: resource=%s is closed on %s (%s), all slots unavailable", resourceID, date, date.Weekday())
	}

	slots := s.window.SlotsForDay()
	views := make([]models.SlotView, len(slots))
	for i, slot := range slots {
		views[i] = models.SlotView{
			StartTime: slot.Start,
			EndTime:   slot.End,
			Occupied:  closed,
		}
		for _, r := range approved {
			if domain.Overlaps(r.Interval(), slot) {
				id := r.ID
				views[i].Occupied = true
				views[i].RequestID = &id
				break
			}
		}
	}

	return &models.DayView{
		ResourceID: resourceID,
		Date:       date,
		Status:     status,
		Density:    s.classify(approved),
		Selectable: status.IsSelectable(),
		Slots:      views,
	}, nil
}

// Month строит календарь ресурса на месяц, по одной ячейке на день
func (s *Service) Month(resourceID string, year int, month time.Month) (*models.MonthView, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: month %d out of range", domain.ErrInvalidInput, month)
	}

	resource, err := s.resources.Get(resourceID)
	if err != nil {
		s.logger.Warn("Month: resource=%s: %v", resourceID, err)
		return nil, err
	}

	days := make([]models.DaySummary, 0, 31)
	for d := 1; d <= types.DaysInMonth(year, month); d++ {
		date := types.NewDate(year, month, d)
		status := s.DayStatus(resource, date)
		days = append(days, models.DaySummary{
			Date:       date,
			Status:     status,
			Density:    s.density(resourceID, date),
			Selectable: status.IsSelectable(),
		})
	}

	return &models.MonthView{
		ResourceID: resourceID,
		Month:      fmt.Sprintf("%04d-%02d", year, int(month)),
		Days:       days,
	}, nil
}

func (s *Service) density(resourceID string, date types.Date) domain.Density {
	return s.classify(s.ledger.ApprovedOn(resourceID, date))
}

func (s *Service) classify(approved []domain.Request) domain.Density {
	total := s.window.Minutes()
	if total == 0 {
		return domain.DensityNone
	}
	booked := occupiedMinutes(s.window.Interval(), approved)
	return domain.ClassifyDensity(float64(booked) / float64(total))
}
