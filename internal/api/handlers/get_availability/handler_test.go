package get_availability

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-RoomBooking/internal/service/catalog"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

type fakeService struct {
	err error
}

func (f *fakeService) Day(resourceID string, date types.Date) (*models.DayView, error) {
	if f.err != nil {
		return nil, f.err
	}
	id := "a"
	return &models.DayView{
		ResourceID: resourceID,
		Date:       date,
		Status:     domain.DayOpen,
		Density:    domain.DensityLight,
		Selectable: true,
		Slots: []models.SlotView{
			{StartTime: "07:00", EndTime: "08:00"},
			{StartTime: "08:00", EndTime: "09:00", Occupied: true, RequestID: &id},
			{StartTime: "09:00", EndTime: "10:00"},
		},
	}, nil
}

func serve(svc AvailabilityService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/resources/{resourceId}/availability", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_PartitionsSlots(t *testing.T) {
	rec := serve(&fakeService{}, "/resources/library/availability?date=2025-06-10")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "library", resp.ResourceID)
	assert.Equal(t, domain.DensityLight, resp.Density)
	assert.Len(t, resp.Slots, 3)
	assert.Equal(t, []domain.Interval{{Start: "08:00", End: "09:00"}}, resp.OccupiedSlots)
	assert.Equal(t, []domain.Interval{{Start: "07:00", End: "08:00"}, {Start: "09:00", End: "10:00"}}, resp.FreeSlots)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		svc    *fakeService
		target string
		want   int
	}{
		{"missing date", &fakeService{}, "/resources/library/availability", http.StatusBadRequest},
		{"bad date", &fakeService{}, "/resources/library/availability?date=2025-13-01", http.StatusBadRequest},
		{"unknown resource", &fakeService{err: catalog.ErrResourceNotFound}, "/resources/pool/availability?date=2025-06-10", http.StatusNotFound},
		{"internal", &fakeService{err: assert.AnError}, "/resources/library/availability?date=2025-06-10", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.svc, tt.target)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
