package submit_request

import (
	"fmt"
	"net/mail"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ResourceID) == "" {
		return fmt.Errorf("%w: resourceId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RequesterName) == "" {
		return fmt.Errorf("%w: requesterName is required", ErrInvalidInput)
	}
	if len(req.RequesterName) > domain.MaxRequesterNameLen {
		return fmt.Errorf("%w: requesterName exceeds %d characters", ErrInvalidInput, domain.MaxRequesterNameLen)
	}

	if strings.TrimSpace(req.RequesterContact) == "" {
		return fmt.Errorf("%w: requesterContact is required", ErrInvalidInput)
	}

	if _, err := mail.ParseAddress(req.RequesterEmail); err != nil {
		return fmt.Errorf("%w: invalid requesterEmail", ErrInvalidInput)
	}

	if len(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose exceeds %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if req.AttendeeCount <= 0 {
		return fmt.Errorf("%w: attendeeCount must be positive", ErrInvalidInput)
	}

	// Дата как простой день YYYY-MM-DD, без перевода в UTC
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if !req.Interval().IsValid() {
		return fmt.Errorf("%w: %s, startTime must be before endTime", ErrInvalidInterval, req.Interval())
	}

	return nil
}

// validateInterval проверяет, что интервал лежит в окне дня и его границы совпадают с границами слотов
func validateInterval(interval domain.Interval, window domain.DayWindow) error {
	if !window.Contains(interval) {
		return fmt.Errorf("%w: %s is outside of %s", ErrInvalidInterval, interval, window.Interval())
	}
	if !window.IsSlotBoundary(interval.Start) || !window.IsSlotBoundary(interval.End) {
		return fmt.Errorf("%w: %s must start and end on %d-minute slot boundaries",
			ErrInvalidInterval, interval, window.SlotMinutes)
	}
	return nil
}

// validateDate проверяет, что день не в прошлом относительно текущего локального дня
func validateDate(date types.Date, today types.Date) error {
	if date.Before(today) {
		return fmt.Errorf("%w: %s is before %s", ErrPastDate, date, today)
	}
	return nil
}

// validateCapacity проверяет вместимость ресурса
func validateCapacity(resource *domain.Resource, attendees int) error {
	if !resource.Fits(attendees) {
		return fmt.Errorf("%w: %d attendees, %s holds %d", ErrCapacityExceeded, attendees, resource.Name, resource.Capacity)
	}
	return nil
}

// validateConfirmationMeeting встреча для подтверждения только в будний день и не в прошлом
func validateConfirmationMeeting(meeting *domain.ConfirmationMeeting, today types.Date) error {
	if meeting == nil {
		return nil
	}
	if err := meeting.Date.Validate(); err != nil {
		return fmt.Errorf("%w: confirmation meeting: %v", ErrInvalidInput, err)
	}
	if err := meeting.Time.Validate(); err != nil {
		return fmt.Errorf("%w: confirmation meeting: %v", ErrInvalidInput, err)
	}
	if meeting.Date.IsWeekend() {
		return fmt.Errorf("%w: %s is a %s", ErrConfirmationNotWeekday, meeting.Date, meeting.Date.Weekday())
	}
	if meeting.Date.Before(today) {
		return fmt.Errorf("%w: confirmation meeting %s", ErrPastDate, meeting.Date)
	}
	return nil
}
