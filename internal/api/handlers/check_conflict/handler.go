package check_conflict

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-RoomBooking/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

const (
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime     = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInterval = "время окончания должно быть позже времени начала"
)

type Handler struct {
	detector ConflictDetector
	logger   Logger
}

func NewHandler(detector ConflictDetector, logger Logger) *Handler {
	return &Handler{
		detector: detector,
		logger:   logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/conflicts
// Query params: date, startTime, endTime. Ответ 200 в обоих случаях, это предупреждение, а не отказ.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	resourceID := mux.Vars(r)["resourceId"]
	q := r.URL.Query()

	date, err := types.ParseDate(q.Get("date"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	start, err := types.NewTimeStringFromString(q.Get("startTime"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	end, err := types.NewTimeStringFromString(q.Get("endTime"))
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	candidate := domain.Interval{Start: start, End: end}
	if !candidate.IsValid() {
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	existing, found := h.detector.FindConflict(resourceID, date, candidate)
	if !found {
		handlers.RespondJSON(w, http.StatusOK, ConflictResponse{Conflict: false})
		return
	}

	h.logger.Info("GET /resources/{id}/conflicts - Conflict found: resource_id=%s, date=%s, interval=%s, existing_id=%s",
		resourceID, date, candidate, existing.ID)
	handlers.RespondJSON(w, http.StatusOK, ConflictResponse{Conflict: true, Existing: fromRequest(existing)})
}
