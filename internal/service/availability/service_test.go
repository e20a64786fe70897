package availability

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/ledger"
	"github.com/m04kA/SMC-RoomBooking/internal/service/catalog"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

const testDate types.Date = "2025-06-10"

func newTestService(requests ...domain.Request) (*Service, *ledger.Store) {
	store := ledger.NewStore()
	store.Replace(requests)
	svc := NewService(store, catalog.NewService(catalog.DefaultResources()), domain.DefaultDayWindow(), logger.NewNop()).
		WithTimeProvider(fixedTime{now: time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)})
	return svc, store
}

func approved(id string, start, end types.TimeString) domain.Request {
	return domain.Request{
		ID:         id,
		ResourceID: "library",
		Date:       testDate,
		StartTime:  start,
		EndTime:    end,
		Status:     domain.StatusApproved,
	}
}

func TestFindConflict(t *testing.T) {
	pending := approved("p", "07:00", "18:00")
	pending.Status = domain.StatusPending
	rejected := approved("r", "07:00", "18:00")
	rejected.Status = domain.StatusRejected

	svc, _ := newTestService(pending, rejected, approved("a", "09:00", "11:00"))

	found, ok := svc.FindConflict("library", testDate, domain.Interval{Start: "10:00", End: "12:00"})
	require.True(t, ok)
	assert.Equal(t, "a", found.ID)

	_, ok = svc.FindConflict("library", testDate, domain.Interval{Start: "11:00", End: "13:00"})
	assert.False(t, ok, "touching end must not conflict")

	_, ok = svc.FindConflict("library", testDate, domain.Interval{Start: "07:00", End: "09:00"})
	assert.False(t, ok, "touching start must not conflict")

	_, ok = svc.FindConflict("gym", testDate, domain.Interval{Start: "09:00", End: "11:00"})
	assert.False(t, ok)

	_, ok = svc.FindConflict("library", "2025-06-11", domain.Interval{Start: "09:00", End: "11:00"})
	assert.False(t, ok)
}

func TestDay_OccupiedAndFreePartitionTheDay(t *testing.T) {
	svc, _ := newTestService(approved("a", "09:00", "11:00"), approved("b", "15:30", "16:30"))

	occupied, err := svc.OccupiedSlots("library", testDate)
	require.NoError(t, err)
	free, err := svc.FreeSlots("library", testDate)
	require.NoError(t, err)

	assert.Equal(t, []domain.Interval{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
		{Start: "15:00", End: "16:00"},
		{Start: "16:00", End: "17:00"},
	}, occupied)

	all := svc.SlotsForDay()
	assert.Len(t, free, len(all)-len(occupied))
	union := map[domain.Interval]int{}
	for _, s := range append(append([]domain.Interval{}, occupied...), free...) {
		union[s]++
	}
	for _, s := range all {
		assert.Equal(t, 1, union[s], "slot %s must be in exactly one set", s)
	}
}

func TestDay_PendingDoesNotOccupy(t *testing.T) {
	pending := approved("p", "09:00", "11:00")
	pending.Status = domain.StatusPending
	svc, _ := newTestService(pending)

	day, err := svc.Day("library", testDate)
	require.NoError(t, err)

	assert.Empty(t, day.Occupied())
	assert.Equal(t, domain.DensityNone, day.Density)
	assert.Equal(t, domain.DayOpen, day.Status)
	assert.True(t, day.Selectable)
}

func TestDensity(t *testing.T) {
	tests := []struct {
		name     string
		requests []domain.Request
		want     domain.Density
	}{
		{"empty", nil, domain.DensityNone},
		{"one hour", []domain.Request{approved("a", "09:00", "10:00")}, domain.DensityLight},
		{"five of eleven", []domain.Request{approved("a", "07:00", "10:00"), approved("b", "13:00", "15:00")}, domain.DensityBusy},
		{"eight of eleven", []domain.Request{approved("a", "07:00", "15:00")}, domain.DensityFull},
		{"overlap counted once", []domain.Request{approved("a", "07:00", "10:00"), approved("b", "08:00", "11:00")}, domain.DensityLight},
		{"clipped to window", []domain.Request{approved("a", "17:00", "23:00")}, domain.DensityLight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(tt.requests...)
			got, err := svc.Density("library", testDate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDay_ClosedResourceHasNoFreeSlots(t *testing.T) {
	svc, _ := newTestService()

	day, err := svc.Day("grounds", "2025-06-14")
	require.NoError(t, err)

	assert.Equal(t, domain.DayClosed, day.Status)
	assert.False(t, day.Selectable)
	assert.Empty(t, day.Free())
	assert.Len(t, day.Occupied(), 11)
}

func TestDay_PastDay(t *testing.T) {
	svc, _ := newTestService()

	day, err := svc.Day("library", "2025-05-31")
	require.NoError(t, err)
	assert.Equal(t, domain.DayPast, day.Status)
	assert.False(t, day.Selectable)
}

type recordingLogger struct {
	warnings []string
	infos    []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {}

func TestDay_UnknownResource(t *testing.T) {
	log := &recordingLogger{}
	svc := NewService(ledger.NewStore(), catalog.NewService(catalog.DefaultResources()), domain.DefaultDayWindow(), log)

	_, err := svc.Day("pool", testDate)
	assert.ErrorIs(t, err, domain.ErrUnknownResource)
	require.Len(t, log.warnings, 1)
	assert.Contains(t, log.warnings[0], "resource=pool")

	_, err = svc.Day("grounds", "2025-06-14")
	require.NoError(t, err)
	require.Len(t, log.infos, 1)
	assert.Contains(t, log.infos[0], "closed on 2025-06-14")
}

func TestDay_ReflectsLedgerChanges(t *testing.T) {
	svc, store := newTestService()

	day, err := svc.Day("library", testDate)
	require.NoError(t, err)
	assert.Empty(t, day.Occupied())

	store.Put(approved("a", "09:00", "11:00"))

	day, err = svc.Day("library", testDate)
	require.NoError(t, err)
	assert.Len(t, day.Occupied(), 2)
}

func TestMonth(t *testing.T) {
	svc, _ := newTestService(approved("a", "07:00", "15:00"))

	month, err := svc.Month("grounds", 2025, time.June)
	require.NoError(t, err)
	require.Len(t, month.Days, 30)
	assert.Equal(t, "2025-06", month.Month)
	assert.Equal(t, domain.DayClosed, month.Days[13].Status) // 2025-06-14, Saturday
	assert.Equal(t, domain.DayOpen, month.Days[9].Status)

	month, err = svc.Month("library", 2025, time.June)
	require.NoError(t, err)
	assert.Equal(t, domain.DensityFull, month.Days[9].Density)
	assert.Equal(t, domain.DensityNone, month.Days[10].Density)

	_, err = svc.Month("library", 2025, 13)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
