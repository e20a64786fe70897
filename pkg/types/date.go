package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// DateLayout формат календарного дня
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается при некорректном формате даты
var ErrInvalidDate = errors.New("invalid date format")

// Date календарный день YYYY-MM-DD в локальном времени ресурса.
// Хранится как строка; сравнение строк совпадает с хронологическим порядком.
type Date string

// ParseDate парсит строку YYYY-MM-DD
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Format(DateLayout) != s {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date(s), nil
}

// DateOf берет год, месяц и день из t в его собственной локации (без перевода в UTC)
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// NewDate собирает дату из компонентов
func NewDate(year int, month time.Month, day int) Date {
	return Date(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
}

// Weekday день недели. Парсинг идет в UTC только для вычисления дня недели,
// сама дата при этом не меняется.
func (d Date) Weekday() time.Weekday {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return time.Sunday
	}
	return t.Weekday()
}

// IsWeekend суббота или воскресенье
func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	t, err := time.Parse(DateLayout, string(d))
	if err != nil {
		return d
	}
	return DateOf(t.AddDate(0, 0, n))
}

// Before строго раньше other
func (d Date) Before(other Date) bool {
	return d < other
}

func (d Date) IsZero() bool {
	return d == ""
}

func (d Date) Validate() error {
	_, err := ParseDate(string(d))
	return err
}

func (d Date) String() string {
	return string(d)
}

// Scan реализует sql.Scanner (DATE в Postgres приходит как time.Time в UTC)
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidDate, src)
	}
}

func (d *Date) scanString(s string) error {
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return string(d), nil
}

// DaysInMonth количество дней в месяце
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
