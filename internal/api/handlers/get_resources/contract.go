package get_resources

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

type ResourceCatalog interface {
	List() []domain.Resource
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
