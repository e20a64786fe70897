package domain

import (
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// BookingStatusAccepted статус записи в старом списке бронирований
const BookingStatusAccepted = "accepted"

// Booking запись старого формата (bookings.json и POST /bookings).
// Список только пополняется, каждая запись описывает одобренную бронь.
type Booking struct {
	ID         string           `json:"id"`
	ResourceID string           `json:"roomId"`
	Date       types.Date       `json:"date"`
	StartTime  types.TimeString `json:"startTime"`
	EndTime    types.TimeString `json:"endTime"`
	Purpose    string           `json:"purpose"`
	Attendees  int              `json:"attendees"`
	Name       string           `json:"name"`
	Email      string           `json:"email"`
	Contact    string           `json:"contact"`
	Status     string           `json:"status"`
}

// BookingFromRequest builds the legacy booking record for an approved request
func BookingFromRequest(r *Request) Booking {
	return Booking{
		ID:         r.ID,
		ResourceID: r.ResourceID,
		Date:       r.Date,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		Purpose:    r.Purpose,
		Attendees:  r.AttendeeCount,
		Name:       r.RequesterName,
		Email:      r.RequesterEmail,
		Contact:    r.RequesterContact,
		Status:     BookingStatusAccepted,
	}
}

// ToRequest converts a legacy booking into an approved request
func (b *Booking) ToRequest() Request {
	return Request{
		ID:               b.ID,
		ResourceID:       b.ResourceID,
		RequesterName:    b.Name,
		RequesterContact: b.Contact,
		RequesterEmail:   b.Email,
		Date:             b.Date,
		StartTime:        b.StartTime,
		EndTime:          b.EndTime,
		AttendeeCount:    b.Attendees,
		Purpose:          b.Purpose,
		Status:           StatusApproved,
		PaymentStatus:    PaymentPending,
	}
}
