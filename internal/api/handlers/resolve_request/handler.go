package resolve_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgConfirmRequired    = "требуется подтверждение: передайте {\"confirm\": true}"
	msgRequestNotFound    = "заявка не найдена"
	msgNotPending         = "заявка уже рассмотрена"
	msgAccepted           = "заявка одобрена"
	msgRejected           = "заявка отклонена"
)

type Handler struct {
	service RequestsService
	action  Action
	logger  Logger
}

// NewHandler создает обработчик для одного действия: accept или reject
func NewHandler(service RequestsService, action Action, logger Logger) *Handler {
	return &Handler{
		service: service,
		action:  action,
		logger:  logger,
	}
}

// Handle POST /api/v1/requests/{requestId}/accept и POST /api/v1/requests/{requestId}/reject
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["requestId"]

	var body ResolveRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("POST /requests/{id}/%s - Invalid request body: %v", h.action, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if !body.Confirm {
		handlers.RespondBadRequest(w, msgConfirmRequired)
		return
	}

	var (
		result  *domain.Request
		err     error
		message string
	)
	switch h.action {
	case ActionAccept:
		result, err = h.service.Accept(r.Context(), id)
		message = msgAccepted
	default:
		result, err = h.service.Reject(r.Context(), id)
		message = msgRejected
	}

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			h.logger.Warn("POST /requests/{id}/%s - Request not found: request_id=%s", h.action, id)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, domain.ErrInvalidTransition):
			h.logger.Warn("POST /requests/{id}/%s - Request is not pending: request_id=%s", h.action, id)
			handlers.RespondError(w, http.StatusConflict, msgNotPending)

		default:
			h.logger.Error("POST /requests/{id}/%s - Failed: request_id=%s, error=%v", h.action, id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /requests/{id}/%s - Request resolved: request_id=%s, status=%s", h.action, id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, ResolveResponse{Success: true, Message: message, Request: *result})
}
