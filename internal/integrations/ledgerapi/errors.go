package ledgerapi

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

var (
	// ErrRequestNotFound возвращается на 404 от удаленного реестра
	ErrRequestNotFound = fmt.Errorf("ledgerapi: %w", domain.ErrRequestNotFound)

	// ErrUnavailable удаленный реестр недоступен (сеть, таймаут, 5xx)
	ErrUnavailable = errors.New("ledgerapi: remote ledger unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("ledgerapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("ledgerapi client: invalid response")
)
