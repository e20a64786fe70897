package submit_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	msgInvalidRequestBody     = "некорректное тело запроса"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime            = "некорректный формат времени, ожидается HH:MM"
	msgSubmitted              = "заявка отправлена и ожидает решения администратора"
	msgConflict               = "выбранное время уже занято одобренной заявкой"
	msgPastDate               = "нельзя забронировать прошедший день"
	msgCapacityExceeded       = "количество участников превышает вместимость помещения"
	msgInvalidInterval        = "некорректный интервал: границы должны совпадать со слотами и лежать в рабочем окне"
	msgResourceNotFound       = "помещение не найдено"
	msgResourceClosed         = "помещение закрыто в выбранный день"
	msgConfirmationNotWeekday = "встреча для подтверждения возможна только в будний день"
	msgInvalidInput           = "некорректные данные заявки"
)

type Handler struct {
	useCase SubmitRequestUseCase
	logger  Logger
}

func NewHandler(useCase SubmitRequestUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /requests - Failed to parse request: %v", err)
		if errors.Is(err, errTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &conflict):
			h.logger.Warn("POST /requests - Conflict: resource_id=%s, date=%s, existing_id=%s",
				req.ResourceID, req.Date, conflict.Existing.ID)
			handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
				Code:     http.StatusConflict,
				Message:  msgConflict,
				Existing: conflict.Existing,
			})

		case errors.Is(err, domain.ErrPastDate):
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, domain.ErrCapacityExceeded):
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, domain.ErrInvalidInterval):
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, domain.ErrUnknownResource):
			handlers.RespondBadRequest(w, msgResourceNotFound)

		case errors.Is(err, domain.ErrResourceClosed):
			handlers.RespondBadRequest(w, msgResourceClosed)

		case errors.Is(err, domain.ErrConfirmationNotWeekday):
			handlers.RespondBadRequest(w, msgConfirmationNotWeekday)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /requests - Validation failed: resource_id=%s, error=%v", req.ResourceID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /requests - Failed to submit request: resource_id=%s, date=%s, error=%v",
				req.ResourceID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests - Request submitted: request_id=%s, resource_id=%s, date=%s, interval=%s-%s",
		result.Request.ID, result.Request.ResourceID, result.Request.Date, result.Request.StartTime, result.Request.EndTime)
	handlers.RespondJSON(w, http.StatusCreated, SubmitResponse{
		Success: true,
		Message: msgSubmitted,
		Request: result.Request,
	})
}
