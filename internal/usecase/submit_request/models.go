package submit_request

import (
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

// Request модель запроса на подачу заявки
type Request struct {
	ResourceID          string                      // ID ресурса
	RequesterName       string                      // Имя заявителя
	RequesterContact    string                      // Телефон или другой контакт
	RequesterEmail      string                      // Email заявителя
	Date                types.Date                  // День бронирования (локальный)
	StartTime           types.TimeString            // Начало интервала, включительно
	EndTime             types.TimeString            // Конец интервала, не включительно
	AttendeeCount       int                         // Количество участников
	Purpose             string                      // Цель мероприятия
	ConfirmationMeeting *domain.ConfirmationMeeting // Встреча для подтверждения (опционально, только будни)
}

// Interval returns the requested half-open interval
func (r *Request) Interval() domain.Interval {
	return domain.Interval{Start: r.StartTime, End: r.EndTime}
}

// Response созданная заявка в статусе pending
type Response struct {
	Request domain.Request
}
