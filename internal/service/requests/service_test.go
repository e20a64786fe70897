package requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/internal/ledger"
	"github.com/m04kA/SMC-RoomBooking/internal/service/catalog"
	"github.com/m04kA/SMC-RoomBooking/internal/service/requests/models"
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

func newTestService(requests ...domain.Request) (*Service, *ledger.Store) {
	store := ledger.NewStore()
	store.Replace(requests)
	sync := syncer.NewSyncer(nil, nil, nil, store, nil, syncer.Config{}, logger.NewNop())
	svc := NewService(sync, store, catalog.NewService(catalog.DefaultResources()), logger.NewNop()).
		WithTimeProvider(fixedTime{now: time.Date(2025, time.June, 10, 8, 0, 0, 0, time.Local)})
	return svc, store
}

func request(id string, status domain.RequestStatus, submitted int) domain.Request {
	return domain.Request{
		ID:            id,
		ResourceID:    "library",
		RequesterName: "Maria Santos",
		Date:          "2025-06-10",
		StartTime:     "09:00",
		EndTime:       "11:00",
		AttendeeCount: 20,
		Purpose:       "Book club",
		Status:        status,
		PaymentStatus: domain.PaymentPending,
		SubmittedAt:   time.Date(2025, time.June, 1, submitted, 0, 0, 0, time.UTC),
	}
}

func TestAccept(t *testing.T) {
	svc, store := newTestService(request("a", domain.StatusPending, 1))

	got, err := svc.Accept(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)

	stored, _ := store.Get("a")
	assert.Equal(t, domain.StatusApproved, stored.Status)
}

func TestAcceptReject_OnlyFromPending(t *testing.T) {
	svc, store := newTestService(request("a", domain.StatusApproved, 1), request("b", domain.StatusRejected, 2))

	_, err := svc.Reject(context.Background(), "a")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = svc.Accept(context.Background(), "b")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, _ := store.Get("a")
	assert.Equal(t, domain.StatusApproved, stored.Status)
}

func TestAccept_DoesNotRecheckConflicts(t *testing.T) {
	svc, _ := newTestService(request("a", domain.StatusApproved, 1), request("b", domain.StatusPending, 2))

	got, err := svc.Accept(context.Background(), "b")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, got.Status)
}

func TestResolve_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Accept(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	_, err = svc.Reject(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	_, err = svc.Edit(context.Background(), "missing", validEdit())
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func validEdit() *models.EditRequest {
	notes := "paid at the office"
	return &models.EditRequest{
		ResourceID:    "gym",
		RequesterName: "Maria Santos",
		Date:          "2025-06-12",
		StartTime:     "13:00",
		EndTime:       "15:00",
		AttendeeCount: 300,
		Purpose:       "Assembly",
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPaid,
		Notes:         &notes,
	}
}

func TestEdit_ReassignsAnyField(t *testing.T) {
	original := request("a", domain.StatusApproved, 1)
	svc, _ := newTestService(original)

	got, err := svc.Edit(context.Background(), "a", validEdit())
	require.NoError(t, err)

	assert.Equal(t, "a", got.ID)
	assert.Equal(t, original.SubmittedAt, got.SubmittedAt)
	assert.Equal(t, domain.StatusPending, got.Status, "edit may reopen a resolved request")
	assert.Equal(t, "gym", got.ResourceID)
	assert.Equal(t, domain.PaymentPaid, got.PaymentStatus)
	require.NotNil(t, got.Notes)
}

func TestEdit_ClearsOptionalFields(t *testing.T) {
	notes := "deposit pending"
	original := request("a", domain.StatusPending, 1)
	original.ConfirmationMeeting = &domain.ConfirmationMeeting{Date: "2025-06-09", Time: "10:00"}
	original.Notes = &notes
	svc, store := newTestService(original)

	edit := validEdit()
	edit.ConfirmationMeeting = nil
	edit.Notes = nil

	got, err := svc.Edit(context.Background(), "a", edit)
	require.NoError(t, err)
	assert.Nil(t, got.ConfirmationMeeting)
	assert.Nil(t, got.Notes)

	stored, _ := store.Get("a")
	assert.Nil(t, stored.ConfirmationMeeting)
	assert.Nil(t, stored.Notes)
	assert.Equal(t, original.SubmittedAt, stored.SubmittedAt)
}

func TestEdit_Validation(t *testing.T) {
	svc, store := newTestService(request("a", domain.StatusPending, 1))

	bad := validEdit()
	bad.EndTime = "12:00"
	_, err := svc.Edit(context.Background(), "a", bad)
	assert.ErrorIs(t, err, domain.ErrValidation)

	bad = validEdit()
	bad.Status = "accepted"
	_, err = svc.Edit(context.Background(), "a", bad)
	assert.ErrorIs(t, err, domain.ErrValidation)

	bad = validEdit()
	bad.ResourceID = "pool"
	_, err = svc.Edit(context.Background(), "a", bad)
	assert.ErrorIs(t, err, domain.ErrUnknownResource)

	stored, _ := store.Get("a")
	assert.Equal(t, "library", stored.ResourceID)
}

func TestList_QueueAndHistory(t *testing.T) {
	approved := request("a", domain.StatusApproved, 1)
	rejected := request("b", domain.StatusRejected, 3)
	late := request("c", domain.StatusPending, 5)
	early := request("d", domain.StatusPending, 2)
	early.ResourceID = "gym"
	early.RequesterName = "Jose Rizal"
	early.Purpose = "Graduation rehearsal"

	svc, _ := newTestService(approved, rejected, late, early)

	queue, err := svc.List(context.Background(), &models.ListRequest{View: models.ViewQueue})
	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, "d", queue[0].ID)
	assert.Equal(t, "c", queue[1].ID)

	history, err := svc.List(context.Background(), &models.ListRequest{View: models.ViewHistory})
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "b", history[0].ID)

	gym := "gym"
	filtered, err := svc.List(context.Background(), &models.ListRequest{View: models.ViewQueue, ResourceID: &gym})
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	search, err := svc.List(context.Background(), &models.ListRequest{Search: "REHEARSAL"})
	require.NoError(t, err)
	require.Len(t, search, 1)
	assert.Equal(t, "d", search[0].ID)

	pending := domain.StatusPending
	empty, err := svc.List(context.Background(), &models.ListRequest{View: models.ViewHistory, Status: &pending})
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = svc.List(context.Background(), &models.ListRequest{View: "archive"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestStats(t *testing.T) {
	past := request("a", domain.StatusApproved, 1)
	past.Date = "2025-06-09"
	past.PaymentStatus = domain.PaymentPaid
	upcoming := request("b", domain.StatusApproved, 2)
	unpaid := request("c", domain.StatusRejected, 3)
	unpaid.PaymentStatus = domain.PaymentUnpaid

	svc, _ := newTestService(past, upcoming, unpaid, request("d", domain.StatusPending, 4))

	stats := svc.Stats(context.Background())
	assert.Equal(t, &models.Stats{
		Total:            4,
		Pending:          1,
		Approved:         2,
		Rejected:         1,
		Paid:             1,
		Unpaid:           1,
		PaymentPending:   2,
		UpcomingApproved: 1,
	}, stats)
}

func TestApprovedOn(t *testing.T) {
	gym := request("g", domain.StatusApproved, 1)
	gym.ResourceID = "gym"
	late := request("l", domain.StatusApproved, 2)
	late.StartTime, late.EndTime = "14:00", "15:00"

	svc, _ := newTestService(late, gym, request("p", domain.StatusPending, 3), request("a", domain.StatusApproved, 4))

	got, err := svc.ApprovedOn(context.Background(), types.Date("2025-06-10"))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "g", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "l", got[2].ID)

	_, err = svc.ApprovedOn(context.Background(), "10/06/2025")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
