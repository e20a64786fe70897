package domain

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Interval полуоткрытый интервал [Start, End) в локальном времени ресурса
type Interval struct {
	Start types.TimeString `json:"startTime"`
	End   types.TimeString `json:"endTime"`
}

// Minutes returns the interval length, 0 for an empty or malformed interval
func (i Interval) Minutes() int {
	d := i.End.Minutes() - i.Start.Minutes()
	if d < 0 || i.Start.Minutes() < 0 || i.End.Minutes() < 0 {
		return 0
	}
	return d
}

// IsValid returns true if both ends are well formed and Start < End
func (i Interval) IsValid() bool {
	return i.Start.Validate() == nil && i.End.Validate() == nil && i.Start.IsBefore(i.End)
}

// Clip returns the part of i inside window, zero Interval if they do not overlap
func (i Interval) Clip(window Interval) Interval {
	if !Overlaps(i, window) {
		return Interval{}
	}
	clipped := i
	if clipped.Start.IsBefore(window.Start) {
		clipped.Start = window.Start
	}
	if clipped.End.IsAfter(window.End) {
		clipped.End = window.End
	}
	return clipped
}

func (i Interval) String() string {
	return fmt.Sprintf("%s-%s", i.Start, i.End)
}

// Overlaps проверяет строгое пересечение полуоткрытых интервалов.
// Интервалы, которые только касаются границами (09:00-10:00 и 10:00-11:00), не пересекаются.
func Overlaps(a, b Interval) bool {
	return a.Start.IsBefore(b.End) && b.Start.IsBefore(a.End)
}

// DayWindow бронируемое окно дня, разбитое на слоты фиксированной длины
type DayWindow struct {
	Start       types.TimeString
	End         types.TimeString
	SlotMinutes int
}

// DefaultDayWindow 07:00-18:00 по 60 минут, 11 слотов
func DefaultDayWindow() DayWindow {
	return DayWindow{
		Start:       DefaultDayStart,
		End:         DefaultDayEnd,
		SlotMinutes: DefaultSlotMinutes,
	}
}

// Validate проверяет, что окно корректно и делится на слоты без остатка
func (w DayWindow) Validate() error {
	if err := w.Start.Validate(); err != nil {
		return fmt.Errorf("day window start: %w", err)
	}
	if err := w.End.Validate(); err != nil {
		return fmt.Errorf("day window end: %w", err)
	}
	if !w.Start.IsBefore(w.End) {
		return fmt.Errorf("day window start %s must be before end %s", w.Start, w.End)
	}
	if w.SlotMinutes < MinSlotMinutes || w.SlotMinutes > MaxSlotMinutes {
		return fmt.Errorf("slot length %d must be between %d and %d minutes", w.SlotMinutes, MinSlotMinutes, MaxSlotMinutes)
	}
	if w.Interval().Minutes()%w.SlotMinutes != 0 {
		return fmt.Errorf("day window %s is not a multiple of %d minutes", w.Interval(), w.SlotMinutes)
	}
	return nil
}

// Interval returns the whole window as one interval
func (w DayWindow) Interval() Interval {
	return Interval{Start: w.Start, End: w.End}
}

// Minutes returns the bookable minutes of the day
func (w DayWindow) Minutes() int {
	return w.Interval().Minutes()
}

// SlotsForDay генерирует упорядоченный список слотов дня.
// Результат не зависит от ресурса и даты; слот, выходящий за конец окна, не добавляется.
func (w DayWindow) SlotsForDay() []Interval {
	slots := make([]Interval, 0)
	if w.SlotMinutes <= 0 {
		return slots
	}

	current := w.Start
	for current.IsBefore(w.End) {
		slotEnd, err := current.AddMinutes(w.SlotMinutes)
		if err != nil || slotEnd.IsAfter(w.End) {
			break
		}
		slots = append(slots, Interval{Start: current, End: slotEnd})
		current = slotEnd
	}

	return slots
}

// IsSlotBoundary returns true if t is a slot start or the window end
func (w DayWindow) IsSlotBoundary(t types.TimeString) bool {
	if t.Validate() != nil || t.IsBefore(w.Start) || t.IsAfter(w.End) {
		return false
	}
	return (t.Minutes()-w.Start.Minutes())%w.SlotMinutes == 0
}

// Contains returns true if i lies fully inside the window
func (w DayWindow) Contains(i Interval) bool {
	return !i.Start.IsBefore(w.Start) && !i.End.IsAfter(w.End)
}

// Density класс загруженности дня для раскраски календаря
type Density string

const (
	DensityNone  Density = "none"
	DensityLight Density = "light"
	DensityBusy  Density = "busy"
	DensityFull  Density = "full"
)

// ClassifyDensity переводит долю занятых минут (0..1) в класс загруженности
func ClassifyDensity(fraction float64) Density {
	switch {
	case fraction < DensityNoneBelow:
		return DensityNone
	case fraction < DensityLightBelow:
		return DensityLight
	case fraction < DensityBusyBelow:
		return DensityBusy
	default:
		return DensityFull
	}
}

// DayStatus доступность дня для новых заявок
type DayStatus string

const (
	DayOpen   DayStatus = "open"
	DayClosed DayStatus = "closed" // ресурс закрыт по недельному правилу
	DayPast   DayStatus = "past"   // день раньше текущего локального дня
)

// IsSelectable returns true if new requests may target this day
func (s DayStatus) IsSelectable() bool {
	return s == DayOpen
}
