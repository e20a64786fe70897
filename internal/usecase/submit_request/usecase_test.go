package submit_request

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/ledger"
	"github.com/m04kA/SMC-RoomBooking/internal/service/availability"
	"github.com/m04kA/SMC-RoomBooking/internal/service/catalog"
	"github.com/m04kA/SMC-RoomBooking/internal/service/requests"
	"github.com/m04kA/SMC-RoomBooking/internal/syncer"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type sequentialIDs struct {
	n int
}

func (s *sequentialIDs) NewID() string {
	s.n++
	return fmt.Sprintf("req-%d", s.n)
}

type fixture struct {
	store        *ledger.Store
	availability *availability.Service
	requests     *requests.Service
	submit       *UseCase
}

func newFixture() *fixture {
	clock := fixedTime{now: time.Date(2025, time.June, 2, 9, 0, 0, 0, time.Local)}
	log := logger.NewNop()
	store := ledger.NewStore()
	store.Replace(nil)
	resources := catalog.NewService(catalog.DefaultResources())
	window := domain.DefaultDayWindow()
	sync := syncer.NewSyncer(nil, nil, nil, store, nil, syncer.Config{}, log)

	avail := availability.NewService(store, resources, window, log).WithTimeProvider(clock)
	return &fixture{
		store:        store,
		availability: avail,
		requests:     requests.NewService(sync, store, resources, log).WithTimeProvider(clock),
		submit: NewUseCase(sync, avail, resources, window, log).
			WithTimeProvider(clock).
			WithIDGenerator(&sequentialIDs{}),
	}
}

func libraryRequest(start, end string, attendees int) *Request {
	return &Request{
		ResourceID:       "library",
		RequesterName:    "Maria Santos",
		RequesterContact: "+63 912 345 6789",
		RequesterEmail:   "maria@example.com",
		Date:             "2025-06-10",
		StartTime:        types.TimeString(start),
		EndTime:          types.TimeString(end),
		AttendeeCount:    attendees,
		Purpose:          "Reading program",
	}
}

func TestSubmit_LibraryScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	// A: pending, does not occupy anything
	a, err := f.submit.Execute(ctx, libraryRequest("09:00", "11:00", 20))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, a.Request.Status)
	assert.Equal(t, domain.PaymentPending, a.Request.PaymentStatus)

	occupied, err := f.availability.OccupiedSlots("library", "2025-06-10")
	require.NoError(t, err)
	assert.Empty(t, occupied)

	// Admin approves A
	_, err = f.requests.Accept(ctx, a.Request.ID)
	require.NoError(t, err)

	occupied, err = f.availability.OccupiedSlots("library", "2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, []domain.Interval{
		{Start: "09:00", End: "10:00"},
		{Start: "10:00", End: "11:00"},
	}, occupied)

	// B overlaps A at 10:00-11:00
	found, ok := f.availability.FindConflict("library", "2025-06-10", domain.Interval{Start: "10:00", End: "12:00"})
	require.True(t, ok)
	assert.Equal(t, a.Request.ID, found.ID)

	_, err = f.submit.Execute(ctx, libraryRequest("10:00", "12:00", 20))
	require.ErrorIs(t, err, domain.ErrConflict)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, a.Request.ID, conflict.Existing.ID)

	// C starts exactly when A ends
	c, err := f.submit.Execute(ctx, libraryRequest("11:00", "13:00", 20))
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, c.Request.Status)

	assert.Equal(t, 2, f.store.Len())
}

func TestSubmit_PendingOverlapIsNotBlocking(t *testing.T) {
	f := newFixture()

	_, err := f.submit.Execute(context.Background(), libraryRequest("09:00", "11:00", 20))
	require.NoError(t, err)
	_, err = f.submit.Execute(context.Background(), libraryRequest("10:00", "12:00", 20))
	require.NoError(t, err)
}

func TestSubmit_ValidationErrorsLeaveLedgerUntouched(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
		want   error
	}{
		{"capacity", func(r *Request) { r.AttendeeCount = 101 }, domain.ErrCapacityExceeded},
		{"past date", func(r *Request) { r.Date = "2025-06-01" }, domain.ErrPastDate},
		{"end before start", func(r *Request) { r.StartTime, r.EndTime = "11:00", "09:00" }, domain.ErrInvalidInterval},
		{"empty interval", func(r *Request) { r.EndTime = r.StartTime }, domain.ErrInvalidInterval},
		{"half hour", func(r *Request) { r.StartTime = "09:30" }, domain.ErrInvalidInterval},
		{"outside window", func(r *Request) { r.StartTime, r.EndTime = "17:00", "19:00" }, domain.ErrInvalidInterval},
		{"unknown resource", func(r *Request) { r.ResourceID = "pool" }, domain.ErrUnknownResource},
		{"bad email", func(r *Request) { r.RequesterEmail = "maria" }, domain.ErrInvalidInput},
		{"missing name", func(r *Request) { r.RequesterName = " " }, domain.ErrInvalidInput},
		{"no attendees", func(r *Request) { r.AttendeeCount = 0 }, domain.ErrInvalidInput},
		{"bad date", func(r *Request) { r.Date = "2025-6-10" }, domain.ErrInvalidInput},
		{"closed day", func(r *Request) { r.ResourceID = "grounds"; r.Date = "2025-06-14" }, domain.ErrResourceClosed},
		{"confirmation on saturday", func(r *Request) {
			r.ConfirmationMeeting = &domain.ConfirmationMeeting{Date: "2025-06-07", Time: "10:00"}
		}, domain.ErrConfirmationNotWeekday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := libraryRequest("09:00", "11:00", 20)
			tt.mutate(req)

			_, err := f.submit.Execute(context.Background(), req)

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.False(t, errors.Is(err, domain.ErrConflict))
			assert.Equal(t, 0, f.store.Len())
		})
	}
}

func TestSubmit_CopiesConfirmationMeeting(t *testing.T) {
	f := newFixture()
	req := libraryRequest("09:00", "11:00", 20)
	req.ConfirmationMeeting = &domain.ConfirmationMeeting{Date: "2025-06-05", Time: "14:00"}

	resp, err := f.submit.Execute(context.Background(), req)
	require.NoError(t, err)

	req.ConfirmationMeeting.Time = "16:00"
	require.NotNil(t, resp.Request.ConfirmationMeeting)
	assert.Equal(t, "14:00", resp.Request.ConfirmationMeeting.Time.String())
	assert.Equal(t, "req-1", resp.Request.ID)
}
