package get_availability

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ResourceID    string            `json:"resourceId"`
	Date          types.Date        `json:"date"`
	Status        domain.DayStatus  `json:"status"`
	Density       domain.Density    `json:"density"`
	Selectable    bool              `json:"selectable"`
	Slots         []models.SlotView `json:"slots"`
	OccupiedSlots []domain.Interval `json:"occupiedSlots"`
	FreeSlots     []domain.Interval `json:"freeSlots"`
}

// FromDayView конвертирует проекцию дня в HTTP response
func FromDayView(day *models.DayView) *AvailabilityResponse {
	return &AvailabilityResponse{
		ResourceID:    day.ResourceID,
		Date:          day.Date,
		Status:        day.Status,
		Density:       day.Density,
		Selectable:    day.Selectable,
		Slots:         day.Slots,
		OccupiedSlots: day.Occupied(),
		FreeSlots:     day.Free(),
	}
}
