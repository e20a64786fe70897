package resolve_request

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// Action решение администратора
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// ResolveRequest тело запроса: решение необратимо, поэтому требуется явное подтверждение
type ResolveRequest struct {
	Confirm bool `json:"confirm"`
}

// ResolveResponse HTTP response model
type ResolveResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Request domain.Request `json:"request"`
}
