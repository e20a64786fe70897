package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation общий класс ошибок ввода, проверяется до любых изменений
	ErrValidation = errors.New("validation failed")

	// ErrPastDate возвращается для дня раньше текущего локального дня
	ErrPastDate = fmt.Errorf("%w: date is in the past", ErrValidation)

	// ErrCapacityExceeded возвращается, когда участников больше вместимости ресурса
	ErrCapacityExceeded = fmt.Errorf("%w: attendee count exceeds resource capacity", ErrValidation)

	// ErrInvalidInterval возвращается для пустого или некорректного интервала
	ErrInvalidInterval = fmt.Errorf("%w: invalid time interval", ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: invalid input data", ErrValidation)

	// ErrUnknownResource возвращается для неизвестного ресурса
	ErrUnknownResource = fmt.Errorf("%w: unknown resource", ErrValidation)

	// ErrResourceClosed возвращается, когда ресурс закрыт в выбранный день
	ErrResourceClosed = fmt.Errorf("%w: resource is closed on this date", ErrValidation)

	// ErrConfirmationNotWeekday возвращается, когда встреча для подтверждения назначена на выходной
	ErrConfirmationNotWeekday = fmt.Errorf("%w: confirmation meeting must fall on a weekday", ErrValidation)

	// ErrConflict пересечение с одобренной заявкой
	ErrConflict = errors.New("interval conflicts with an approved request")

	// ErrRequestNotFound возвращается для неизвестного id заявки
	ErrRequestNotFound = errors.New("request not found")

	// ErrInvalidTransition возвращается при accept/reject не из pending
	ErrInvalidTransition = errors.New("request is not pending")

	// ErrDataUnavailable все источники данных недоступны и кэш ни разу не загружался
	ErrDataUnavailable = errors.New("booking data unavailable")
)

// ConflictError несет заявку, с которой пересекается кандидат
type ConflictError struct {
	Existing Request
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: request %s on %s %s-%s",
		ErrConflict, e.Existing.ID, e.Existing.Date, e.Existing.StartTime, e.Existing.EndTime)
}

// Is allows errors.Is(err, ErrConflict)
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}
