package domain

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// WeeklyAvailabilityRule дни недели, в которые ресурс закрыт
type WeeklyAvailabilityRule struct {
	ClosedWeekdays []string `json:"closedWeekdays,omitempty" toml:"closed_weekdays"` // "saturday", "sunday", ...
}

// IsClosedOn returns true if the rule closes the resource on the weekday of date
func (r WeeklyAvailabilityRule) IsClosedOn(date types.Date) bool {
	weekday := date.Weekday()
	for _, closed := range r.ClosedWeekdays {
		if wd, ok := ParseWeekday(closed); ok && wd == weekday {
			return true
		}
	}
	return false
}

// Resource бронируемое помещение, справочные данные
type Resource struct {
	ID                     string                 `json:"id" toml:"id"`
	Name                   string                 `json:"name" toml:"name"`
	Capacity               int                    `json:"capacity" toml:"capacity"`
	WeeklyAvailabilityRule WeeklyAvailabilityRule `json:"weeklyAvailabilityRule" toml:"weekly_availability"`
}

// IsClosedOn returns true if the resource does not accept bookings on date
func (r *Resource) IsClosedOn(date types.Date) bool {
	return r.WeeklyAvailabilityRule.IsClosedOn(date)
}

// Fits returns true if attendees fit into the resource
func (r *Resource) Fits(attendees int) bool {
	return attendees > 0 && attendees <= r.Capacity
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday парсит название дня недели без учета регистра
func ParseWeekday(name string) (time.Weekday, bool) {
	wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	return wd, ok
}
