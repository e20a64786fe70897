package submit_request

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("submit_request: %w", domain.ErrInvalidInput)

	// ErrInvalidInterval возвращается, когда интервал пуст, не кратен слоту или выходит за окно дня
	ErrInvalidInterval = fmt.Errorf("submit_request: %w", domain.ErrInvalidInterval)

	// ErrPastDate возвращается для прошедшего дня
	ErrPastDate = fmt.Errorf("submit_request: %w", domain.ErrPastDate)

	// ErrCapacityExceeded возвращается, когда участников больше вместимости
	ErrCapacityExceeded = fmt.Errorf("submit_request: %w", domain.ErrCapacityExceeded)

	// ErrResourceClosed возвращается, когда ресурс закрыт в выбранный день
	ErrResourceClosed = fmt.Errorf("submit_request: %w", domain.ErrResourceClosed)

	// ErrConfirmationNotWeekday возвращается, когда встреча назначена на выходной
	ErrConfirmationNotWeekday = fmt.Errorf("submit_request: %w", domain.ErrConfirmationNotWeekday)
)
