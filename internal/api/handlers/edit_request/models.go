package edit_request

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/requests/models"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// EditRequest HTTP request model: все изменяемые поля заявки
type EditRequest struct {
	ResourceID          string                  `json:"resourceId"`
	RequesterName       string                  `json:"requesterName"`
	RequesterContact    string                  `json:"requesterContact"`
	RequesterEmail      string                  `json:"requesterEmail"`
	Date                string                  `json:"date"`
	StartTime           string                  `json:"startTime"`
	EndTime             string                  `json:"endTime"`
	AttendeeCount       int                     `json:"attendeeCount"`
	Purpose             string                  `json:"purpose"`
	ConfirmationMeeting *ConfirmationMeetingDTO `json:"confirmationMeeting,omitempty"`
	Status              string                  `json:"status"`
	PaymentStatus       string                  `json:"paymentStatus"`
	Notes               *string                 `json:"notes,omitempty"`
}

type ConfirmationMeetingDTO struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// IsEmpty true, если дата и время не заданы
func (m *ConfirmationMeetingDTO) IsEmpty() bool {
	return strings.TrimSpace(m.Date) == "" && strings.TrimSpace(m.Time) == ""
}

// EditResponse HTTP response model
type EditResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Request domain.Request `json:"request"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *EditRequest) ToServiceRequest() (*models.EditRequest, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	// Пустая встреча или пустые заметки очищают поле
	var meeting *domain.ConfirmationMeeting
	if r.ConfirmationMeeting != nil && !r.ConfirmationMeeting.IsEmpty() {
		mDate, err := types.ParseDate(r.ConfirmationMeeting.Date)
		if err != nil {
			return nil, fmt.Errorf("confirmationMeeting: %w", err)
		}
		mTime, err := types.NewTimeStringFromString(r.ConfirmationMeeting.Time)
		if err != nil {
			return nil, fmt.Errorf("confirmationMeeting: %w", err)
		}
		meeting = &domain.ConfirmationMeeting{Date: mDate, Time: mTime}
	}

	notes := r.Notes
	if notes != nil && strings.TrimSpace(*notes) == "" {
		notes = nil
	}

	return &models.EditRequest{
		ResourceID:          r.ResourceID,
		RequesterName:       r.RequesterName,
		RequesterContact:    r.RequesterContact,
		RequesterEmail:      r.RequesterEmail,
		Date:                date,
		StartTime:           start,
		EndTime:             end,
		AttendeeCount:       r.AttendeeCount,
		Purpose:             r.Purpose,
		ConfirmationMeeting: meeting,
		Status:              domain.RequestStatus(r.Status),
		PaymentStatus:       domain.PaymentStatus(r.PaymentStatus),
		Notes:               notes,
	}, nil
}
