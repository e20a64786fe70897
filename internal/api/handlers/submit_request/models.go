package submit_request

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	submitRequest "github.com/m04kA/SMC-RoomBooking/internal/usecase/submit_request"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// SubmitRequest HTTP request model
type SubmitRequest struct {
	ResourceID          string                  `json:"resourceId"`
	RequesterName       string                  `json:"requesterName"`
	RequesterContact    string                  `json:"requesterContact"`
	RequesterEmail      string                  `json:"requesterEmail"`
	Date                string                  `json:"date"`      // "2025-06-10"
	StartTime           string                  `json:"startTime"` // "09:00"
	EndTime             string                  `json:"endTime"`   // "11:00"
	AttendeeCount       int                     `json:"attendeeCount"`
	Purpose             string                  `json:"purpose"`
	ConfirmationMeeting *ConfirmationMeetingDTO `json:"confirmationMeeting,omitempty"`
}

type ConfirmationMeetingDTO struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// SubmitResponse HTTP response model
type SubmitResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Request domain.Request `json:"request"`
}

// ConflictResponse тело 409 с заявкой, которая уже занимает интервал
type ConflictResponse struct {
	Code     int            `json:"code"`
	Message  string         `json:"message"`
	Existing domain.Request `json:"existing"`
}

var (
	errDate = errors.New("invalid date")
	errTime = errors.New("invalid time")
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *SubmitRequest) ToUseCaseRequest() (*submitRequest.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errDate, err)
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errTime, err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errTime, err)
	}

	var meeting *domain.ConfirmationMeeting
	if r.ConfirmationMeeting != nil {
		mDate, err := types.ParseDate(r.ConfirmationMeeting.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errDate, err)
		}
		mTime, err := types.NewTimeStringFromString(r.ConfirmationMeeting.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errTime, err)
		}
		meeting = &domain.ConfirmationMeeting{Date: mDate, Time: mTime}
	}

	return &submitRequest.Request{
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
	}, nil
}
