package list_requests

import (
	"fmt"
	"net/url"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/requests/models"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// RequestsResponse HTTP response model
type RequestsResponse struct {
	Requests []domain.Request `json:"requests"`
	Total    int              `json:"total"`
}

// ToListRequest разбирает query-параметры списка
func ToListRequest(q url.Values) (*models.ListRequest, error) {
	req := &models.ListRequest{
		View:   models.View(q.Get("view")),
		Search: q.Get("search"),
	}

	switch req.View {
	case models.ViewAll, models.ViewQueue, models.ViewHistory:
	default:
		return nil, fmt.Errorf("unknown view %q", req.View)
	}

	if v := q.Get("resourceId"); v != "" {
		req.ResourceID = &v
	}
	if v := q.Get("status"); v != "" {
		status := domain.RequestStatus(v)
		req.Status = &status
	}
	if v := q.Get("paymentStatus"); v != "" {
		payment := domain.PaymentStatus(v)
		req.PaymentStatus = &payment
	}
	if v := q.Get("date"); v != "" {
		date, err := types.ParseDate(v)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}
