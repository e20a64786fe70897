package requests

import (
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrRequestNotFound возвращается, когда заявка не найдена
	ErrRequestNotFound = fmt.Errorf("requests: %w", domain.ErrRequestNotFound)

	// ErrNotPending возвращается при accept/reject уже решенной заявки
	ErrNotPending = fmt.Errorf("requests: %w", domain.ErrInvalidTransition)

	// ErrInvalidInput возвращается при некорректных полях редактирования или фильтра
	ErrInvalidInput = fmt.Errorf("requests: %w", domain.ErrInvalidInput)
)
