package get_resources

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// ResourcesResponse список помещений
type ResourcesResponse struct {
	Resources []domain.Resource `json:"resources"`
}
