package create_ledger_request

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/integrations/ledgerapi"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgSaved              = "Request saved successfully"
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

// Handle POST /api/requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req domain.Request
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /requests - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, ledgerapi.RequestEnvelope{Message: msgInvalidRequestBody})
		return
	}

	saved, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			handlers.RespondJSON(w, http.StatusBadRequest, ledgerapi.RequestEnvelope{Message: msgInvalidRequestBody})
			return
		}
		h.logger.Error("POST /requests - Failed to save request: request_id=%s, error=%v", req.ID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, ledgerapi.RequestEnvelope{Success: true, Message: msgSaved, Request: saved})
}
