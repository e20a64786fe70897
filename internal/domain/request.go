package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// RequestStatus represents the status of a room request
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// IsValid returns true for one of the known statuses
func (s RequestStatus) IsValid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// PaymentStatus represents the payment state of a request
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentUnpaid  PaymentStatus = "unpaid"
)

// IsValid returns true for one of the known payment statuses
func (s PaymentStatus) IsValid() bool {
	for _, known := range AllPaymentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// ConfirmationMeeting визит для подтверждения брони, только в будни
type ConfirmationMeeting struct {
	Date types.Date       `json:"date"`
	Time types.TimeString `json:"time"`
}

// Request represents a room reservation, pending or resolved
type Request struct {
	ID                  string               `json:"id"`
	ResourceID          string               `json:"resourceId"`
	RequesterName       string               `json:"requesterName"`
	RequesterContact    string               `json:"requesterContact"`
	RequesterEmail      string               `json:"requesterEmail"`
	Date                types.Date           `json:"date"`
	StartTime           types.TimeString     `json:"startTime"`
	EndTime             types.TimeString     `json:"endTime"`
	AttendeeCount       int                  `json:"attendeeCount"`
	Purpose             string               `json:"purpose"`
	ConfirmationMeeting *ConfirmationMeeting `json:"confirmationMeeting,omitempty"`
	Status              RequestStatus        `json:"status"`
	PaymentStatus       PaymentStatus        `json:"paymentStatus"`
	SubmittedAt         time.Time            `json:"submittedAt"`
	Notes               *string              `json:"notes,omitempty"`
}

// Interval returns the booked half-open interval
func (r *Request) Interval() Interval {
	return Interval{Start: r.StartTime, End: r.EndTime}
}

func (r *Request) IsPending() bool {
	return r.Status == StatusPending
}

// IsApproved returns true if the request occupies its interval
func (r *Request) IsApproved() bool {
	return r.Status == StatusApproved
}

// IsResolved returns true if the admin has approved or rejected the request
func (r *Request) IsResolved() bool {
	return r.Status == StatusApproved || r.Status == StatusRejected
}

// IsOn returns true if the request is for the given resource and day
func (r *Request) IsOn(resourceID string, date types.Date) bool {
	return r.ResourceID == resourceID && r.Date == date
}

// Clone returns a deep copy safe to hand out of the ledger
func (r Request) Clone() Request {
	if r.ConfirmationMeeting != nil {
		meeting := *r.ConfirmationMeeting
		r.ConfirmationMeeting = &meeting
	}
	if r.Notes != nil {
		notes := *r.Notes
		r.Notes = &notes
	}
	return r
}

// Normalize приводит дату и время заявки к каноническому виду (YYYY-MM-DD, HH:MM),
// например "9:00" становится "09:00". Строковые сравнения интервалов корректны только
// для канонических значений. Нераспознанная встреча для подтверждения отбрасывается.
func (r *Request) Normalize() error {
	date, err := types.ParseDate(strings.TrimSpace(string(r.Date)))
	if err != nil {
		return fmt.Errorf("%w: request %s: %v", ErrInvalidInput, r.ID, err)
	}
	start, err := types.NewTimeStringFromString(strings.TrimSpace(string(r.StartTime)))
	if err != nil {
		return fmt.Errorf("%w: request %s startTime: %v", ErrInvalidInput, r.ID, err)
	}
	end, err := types.NewTimeStringFromString(strings.TrimSpace(string(r.EndTime)))
	if err != nil {
		return fmt.Errorf("%w: request %s endTime: %v", ErrInvalidInput, r.ID, err)
	}
	r.Date, r.StartTime, r.EndTime = date, start, end

	if m := r.ConfirmationMeeting; m != nil {
		mDate, dErr := types.ParseDate(strings.TrimSpace(string(m.Date)))
		mTime, tErr := types.NewTimeStringFromString(strings.TrimSpace(string(m.Time)))
		if dErr != nil || tErr != nil {
			r.ConfirmationMeeting = nil
		} else {
			r.ConfirmationMeeting = &ConfirmationMeeting{Date: mDate, Time: mTime}
		}
	}
	return nil
}

// RequestPatch частичное обновление заявки, nil поле не меняется
type RequestPatch struct {
	ResourceID          *string              `json:"resourceId,omitempty"`
	RequesterName       *string              `json:"requesterName,omitempty"`
	RequesterContact    *string              `json:"requesterContact,omitempty"`
	RequesterEmail      *string              `json:"requesterEmail,omitempty"`
	Date                *types.Date          `json:"date,omitempty"`
	StartTime           *types.TimeString    `json:"startTime,omitempty"`
	EndTime             *types.TimeString    `json:"endTime,omitempty"`
	AttendeeCount       *int                 `json:"attendeeCount,omitempty"`
	Purpose             *string              `json:"purpose,omitempty"`
	ConfirmationMeeting *ConfirmationMeeting `json:"confirmationMeeting,omitempty"`
	Status              *RequestStatus       `json:"status,omitempty"`
	PaymentStatus       *PaymentStatus       `json:"paymentStatus,omitempty"`
	Notes               *string              `json:"notes,omitempty"`
}

// Apply merges the patch into r. ID and SubmittedAt are never changed.
func (p *RequestPatch) Apply(r *Request) {
	if p.ResourceID != nil {
		r.ResourceID = *p.ResourceID
	}
	if p.RequesterName != nil {
		r.RequesterName = *p.RequesterName
	}
	if p.RequesterContact != nil {
		r.RequesterContact = *p.RequesterContact
	}
	if p.RequesterEmail != nil {
		r.RequesterEmail = *p.RequesterEmail
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.StartTime != nil {
		r.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		r.EndTime = *p.EndTime
	}
	if p.AttendeeCount != nil {
		r.AttendeeCount = *p.AttendeeCount
	}
	if p.Purpose != nil {
		r.Purpose = *p.Purpose
	}
	if p.ConfirmationMeeting != nil {
		meeting := *p.ConfirmationMeeting
		r.ConfirmationMeeting = &meeting
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	if p.PaymentStatus != nil {
		r.PaymentStatus = *p.PaymentStatus
	}
	if p.Notes != nil {
		notes := *p.Notes
		r.Notes = &notes
	}
}

// Merge накладывает other поверх p: заданные в other поля побеждают
func (p *RequestPatch) Merge(other RequestPatch) {
	if other.ResourceID != nil {
		p.ResourceID = other.ResourceID
	}
	if other.RequesterName != nil {
		p.RequesterName = other.RequesterName
	}
	if other.RequesterContact != nil {
		p.RequesterContact = other.RequesterContact
	}
	if other.RequesterEmail != nil {
		p.RequesterEmail = other.RequesterEmail
	}
	if other.Date != nil {
		p.Date = other.Date
	}
	if other.StartTime != nil {
		p.StartTime = other.StartTime
	}
	if other.EndTime != nil {
		p.EndTime = other.EndTime
	}
	if other.AttendeeCount != nil {
		p.AttendeeCount = other.AttendeeCount
	}
	if other.Purpose != nil {
		p.Purpose = other.Purpose
	}
	if other.ConfirmationMeeting != nil {
		p.ConfirmationMeeting = other.ConfirmationMeeting
	}
	if other.Status != nil {
		p.Status = other.Status
	}
	if other.PaymentStatus != nil {
		p.PaymentStatus = other.PaymentStatus
	}
	if other.Notes != nil {
		p.Notes = other.Notes
	}
}

// IsEmpty returns true if the patch changes nothing
func (p *RequestPatch) IsEmpty() bool {
	return *p == RequestPatch{}
}

// RequestFilter фильтр для списков администратора
type RequestFilter struct {
	Statuses      []RequestStatus // пусто - все статусы
	ResourceID    *string
	PaymentStatus *PaymentStatus
	Date          *types.Date
	Search        string // подстрока имени заявителя или цели, без учета регистра
}
