package edit_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля заявки"
	msgRequestNotFound    = "заявка не найдена"
	msgUpdated            = "заявка обновлена"
)

type Handler struct {
	service RequestsService
	logger  Logger
}

func NewHandler(service RequestsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/requests/{requestId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["requestId"]

	var req EditRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /requests/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /requests/{id} - Failed to parse request: request_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	updated, err := h.service.Edit(r.Context(), id, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRequestNotFound):
			h.logger.Warn("PUT /requests/{id} - Request not found: request_id=%s", id)
			handlers.RespondNotFound(w, msgRequestNotFound)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("PUT /requests/{id} - Validation failed: request_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("PUT /requests/{id} - Failed to edit request: request_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /requests/{id} - Request updated: request_id=%s, status=%s", id, updated.Status)
	handlers.RespondJSON(w, http.StatusOK, EditResponse{Success: true, Message: msgUpdated, Request: *updated})
}
