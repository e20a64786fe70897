package patch_ledger_request

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/ledgerapi"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgNotFound           = "Request not found"
	msgUpdated            = "Request updated successfully"
)

type Handler struct {
	service LedgerService
	logger  Logger
}

func NewHandler(service LedgerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/requests/{requestId}
// Тело содержит только изменяемые поля; id и время подачи игнорируются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["requestId"]

	var patch domain.RequestPatch
	if err := handlers.DecodeJSON(r, &patch); err != nil {
		h.logger.Warn("PATCH /requests/{id} - Invalid request body: request_id=%s, error=%v", id, err)
		handlers.RespondJSON(w, http.StatusBadRequest, ledgerapi.RequestEnvelope{Message: msgInvalidRequestBody})
		return
	}

	updated, err := h.service.Patch(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrRequestNotFound) {
			handlers.RespondJSON(w, http.StatusNotFound, ledgerapi.RequestEnvelope{Message: msgNotFound})
			return
		}
		h.logger.Error("PATCH /requests/{id} - Failed to patch request: request_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ledgerapi.RequestEnvelope{Success: true, Message: msgUpdated, Request: updated})
}
