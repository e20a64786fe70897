package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDayWindow_SlotsForDay(t *testing.T) {
	slots := DefaultDayWindow().SlotsForDay()

	require.Len(t, slots, 11)
	assert.Equal(t, Interval{Start: "07:00", End: "08:00"}, slots[0])
	assert.Equal(t, Interval{Start: "17:00", End: "18:00"}, slots[10])
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}

func TestDayWindow_SlotsForDay_DropsPartialTail(t *testing.T) {
	w := DayWindow{Start: "08:00", End: "10:30", SlotMinutes: 60}
	assert.Equal(t, []Interval{
		{Start: "08:00", End: "09:00"},
		{Start: "09:00", End: "10:00"},
	}, w.SlotsForDay())
	assert.Error(t, w.Validate())
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"touching end", Interval{"09:00", "10:00"}, Interval{"10:00", "11:00"}, false},
		{"touching start", Interval{"11:00", "13:00"}, Interval{"09:00", "11:00"}, false},
		{"partial", Interval{"10:00", "12:00"}, Interval{"09:00", "11:00"}, true},
		{"contained", Interval{"09:30", "09:45"}, Interval{"09:00", "10:00"}, true},
		{"identical", Interval{"09:00", "10:00"}, Interval{"09:00", "10:00"}, true},
		{"disjoint", Interval{"07:00", "08:00"}, Interval{"15:00", "16:00"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.a, tt.b))
			assert.Equal(t, tt.want, Overlaps(tt.b, tt.a))
		})
	}
}

func TestInterval_Clip(t *testing.T) {
	window := Interval{"07:00", "18:00"}
	assert.Equal(t, Interval{"07:00", "08:00"}, Interval{"06:00", "08:00"}.Clip(window))
	assert.Equal(t, Interval{}, Interval{"18:00", "19:00"}.Clip(window))
	assert.Equal(t, 60, Interval{"17:00", "20:00"}.Clip(window).Minutes())
}

func TestClassifyDensity(t *testing.T) {
	assert.Equal(t, DensityNone, ClassifyDensity(0))
	assert.Equal(t, DensityLight, ClassifyDensity(1.0/11))
	assert.Equal(t, DensityBusy, ClassifyDensity(5.0/11))
	assert.Equal(t, DensityFull, ClassifyDensity(8.0/11))
	assert.Equal(t, DensityFull, ClassifyDensity(1))
}

func TestDayWindow_IsSlotBoundary(t *testing.T) {
	w := DefaultDayWindow()
	assert.True(t, w.IsSlotBoundary("07:00"))
	assert.True(t, w.IsSlotBoundary("18:00"))
	assert.False(t, w.IsSlotBoundary("09:30"))
	assert.False(t, w.IsSlotBoundary("06:00"))
	assert.False(t, w.IsSlotBoundary("19:00"))
}

func TestResource_IsClosedOn(t *testing.T) {
	grounds := Resource{
		ID:                     "grounds",
		Capacity:               1800,
		WeeklyAvailabilityRule: WeeklyAvailabilityRule{ClosedWeekdays: []string{"Saturday", "sunday"}},
	}
	assert.True(t, grounds.IsClosedOn("2025-06-14"))
	assert.True(t, grounds.IsClosedOn("2025-06-15"))
	assert.False(t, grounds.IsClosedOn("2025-06-16"))
	assert.True(t, grounds.Fits(1800))
	assert.False(t, grounds.Fits(1801))
}

func TestRequestPatch_Apply_KeepsIdentity(t *testing.T) {
	req := Request{ID: "a", Status: StatusApproved, PaymentStatus: PaymentPending}
	status := StatusRejected
	notes := "moved to library"
	patch := RequestPatch{Status: &status, Notes: &notes}

	patch.Apply(&req)

	assert.Equal(t, "a", req.ID)
	assert.Equal(t, StatusRejected, req.Status)
	require.NotNil(t, req.Notes)
	assert.Equal(t, notes, *req.Notes)
	assert.False(t, patch.IsEmpty())
	assert.True(t, (&RequestPatch{}).IsEmpty())
}

func TestErrorTaxonomy(t *testing.T) {
	assert.True(t, errors.Is(ErrCapacityExceeded, ErrValidation))
	assert.True(t, errors.Is(ErrPastDate, ErrValidation))

	var err error = &ConflictError{Existing: Request{ID: "a"}}
	assert.ErrorIs(t, err, ErrConflict)
	assert.False(t, errors.Is(err, ErrValidation))

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "a", conflict.Existing.ID)
}
