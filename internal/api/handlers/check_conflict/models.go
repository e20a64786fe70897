package check_conflict

import "github.com/m04kA/SMC-RoomBooking/internal/domain"

// ConflictResponse результат проверки интервала до подачи заявки.
// Запись о конфликте содержит только поля, нужные для предупреждения.
type ConflictResponse struct {
	Conflict bool          `json:"conflict"`
	Existing *ConflictInfo `json:"existing,omitempty"`
}

type ConflictInfo struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Purpose   string `json:"purpose"`
}

func fromRequest(r *domain.Request) *ConflictInfo {
	return &ConflictInfo{
		ID:        r.ID,
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		Purpose:   r.Purpose,
	}
}
