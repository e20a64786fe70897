package edit_request

import (
	"context"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/requests/models"
)

type RequestsService interface {
	Edit(ctx context.Context, id string, req *models.EditRequest) (*domain.Request, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
