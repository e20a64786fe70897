package models

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// View представление списков администратора
type View string

const (
	ViewAll     View = ""
	ViewQueue   View = "queue"   // только pending
	ViewHistory View = "history" // approved и rejected
)

// ListRequest параметры списка заявок
type ListRequest struct {
	View          View
	ResourceID    *string
	Status        *domain.RequestStatus
	PaymentStatus *domain.PaymentStatus
	Date          *types.Date
	Search        string
}

// Stats сводка по заявкам для панели администратора
type Stats struct {
	Total            int `json:"total"`
	Pending          int `json:"pending"`
	Approved         int `json:"approved"`
	Rejected         int `json:"rejected"`
	Paid             int `json:"paid"`
	Unpaid           int `json:"unpaid"`
	PaymentPending   int `json:"paymentPending"`
	UpcomingApproved int `json:"upcomingApproved"` // одобренные на сегодня и позже
}

// EditRequest полный набор изменяемых полей заявки
type EditRequest struct {
	ResourceID          string
	RequesterName       string
	RequesterContact    string
	RequesterEmail      string
	Date                types.Date
	StartTime           types.TimeString
	EndTime             types.TimeString
	AttendeeCount       int
	Purpose             string
	ConfirmationMeeting *domain.ConfirmationMeeting
	Status              domain.RequestStatus
	PaymentStatus       domain.PaymentStatus
	Notes               *string
}

// ApplyTo возвращает current, в которой все изменяемые поля заменены значениями правки.
// Пустые ConfirmationMeeting и Notes очищают соответствующие поля.
func (e *EditRequest) ApplyTo(current domain.Request) domain.Request {
	updated := current
	updated.ResourceID = e.ResourceID
	updated.RequesterName = e.RequesterName
	updated.RequesterContact = e.RequesterContact
	updated.RequesterEmail = e.RequesterEmail
	updated.Date = e.Date
	updated.StartTime = e.StartTime
	updated.EndTime = e.EndTime
	updated.AttendeeCount = e.AttendeeCount
	updated.Purpose = e.Purpose
	updated.ConfirmationMeeting = e.ConfirmationMeeting
	updated.Status = e.Status
	updated.PaymentStatus = e.PaymentStatus
	updated.Notes = e.Notes
	return updated.Clone()
}
