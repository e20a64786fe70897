package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат выходит за пределы суток
	ErrTimeOverflow = errors.New("time string overflows the day")
)

// TimeString время суток в формате HH:MM без даты и часового пояса.
// Строки с ведущими нулями сравниваются лексикографически в том же порядке, что и время.
type TimeString string

// NewTimeStringFromString парсит строку HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(t.Format(timeLayout)), nil
}

// NewTimeString берет часы и минуты из t как есть, без перевода часового пояса
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// TimeStringFromMinutes строит время из количества минут от полуночи
func TimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Minutes возвращает количество минут от полуночи, -1 для некорректного значения
func (ts TimeString) Minutes() int {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

// AddMinutes возвращает время, сдвинутое на n минут
func (ts TimeString) AddMinutes(n int) (TimeString, error) {
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return TimeStringFromMinutes(ts.Minutes() + n)
}

// IsBefore строго раньше other
func (ts TimeString) IsBefore(other TimeString) bool {
	return ts < other
}

// IsAfter строго позже other
func (ts TimeString) IsAfter(other TimeString) bool {
	return ts > other
}

func (ts TimeString) IsZero() bool {
	return ts == ""
}

// IsWholeHour true, если минуты равны нулю
func (ts TimeString) IsWholeHour() bool {
	return ts.Minutes()%60 == 0
}

// Validate проверяет формат HH:MM с ведущими нулями
func (ts TimeString) Validate() error {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil || t.Format(timeLayout) != string(ts) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

func (ts TimeString) String() string {
	return string(ts)
}

// Scan реализует sql.Scanner (TIME в Postgres приходит как "10:00:00")
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

// Value реализует driver.Valuer
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	return string(ts), nil
}
