package models

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// SlotView слот дня с признаком занятости
type SlotView struct {
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
	Occupied  bool             `json:"occupied"`
	RequestID *string          `json:"requestId,omitempty"` // первая одобренная заявка, занявшая слот
}

// DayView проекция доступности ресурса на один день
type DayView struct {
	ResourceID string           `json:"resourceId"`
	Date       types.Date       `json:"date"`
	Status     domain.DayStatus `json:"status"`
	Density    domain.Density   `json:"density"`
	Selectable bool             `json:"selectable"`
	Slots      []SlotView       `json:"slots"`
}

// Occupied returns the occupied slots in day order
func (d *DayView) Occupied() []domain.Interval {
	out := make([]domain.Interval, 0)
	for _, s := range d.Slots {
		if s.Occupied {
			out = append(out, domain.Interval{Start: s.StartTime, End: s.EndTime})
		}
	}
	return out
}

// Free returns the free slots in day order
func (d *DayView) Free() []domain.Interval {
	out := make([]domain.Interval, 0)
	for _, s := range d.Slots {
		if !s.Occupied {
			out = append(out, domain.Interval{Start: s.StartTime, End: s.EndTime})
		}
	}
	return out
}

// DaySummary одна ячейка календаря
type DaySummary struct {
	Date       types.Date       `json:"date"`
	Status     domain.DayStatus `json:"status"`
	Density    domain.Density   `json:"density"`
	Selectable bool             `json:"selectable"`
}

// MonthView календарь ресурса на месяц
type MonthView struct {
	ResourceID string       `json:"resourceId"`
	Month      string       `json:"month"` // YYYY-MM
	Days       []DaySummary `json:"days"`
}
