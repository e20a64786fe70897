package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

func writeFile(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestReader_Resources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ResourcesFile, `{"resources":[
		{"id":"grounds","name":"Grounds","capacity":1800,"weeklyAvailabilityRule":{"closedWeekdays":["saturday","sunday"]}}
	]}`)

	got, err := NewReader(dir).Resources(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "grounds", got[0].ID)
	assert.Equal(t, 1800, got[0].Capacity)
}

func TestReader_RequestsMergesBookings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RequestsFile, `{"requests":[
		{"id":"r1","resourceId":"library","date":"2025-06-10","startTime":"09:00","endTime":"11:00","status":"pending","paymentStatus":"pending"},
		{"id":"b1","resourceId":"library","date":"2025-06-10","startTime":"12:00","endTime":"13:00","status":"approved","paymentStatus":"paid"}
	]}`)
	writeFile(t, dir, BookingsFile, `{"bookings":[
		{"id":"b1","roomId":"library","date":"2025-06-10","startTime":"12:00","endTime":"13:00","status":"accepted"},
		{"id":"b2","roomId":"auditorium","date":"2025-06-11","startTime":"07:00","endTime":"09:00","name":"Old","attendees":300,"status":"accepted"}
	]}`)

	got, err := NewReader(dir).Requests(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "r1", got[0].ID)
	assert.Equal(t, domain.PaymentPaid, got[1].PaymentStatus, "requests.json wins on duplicate id")
	assert.Equal(t, "b2", got[2].ID)
	assert.Equal(t, domain.StatusApproved, got[2].Status)
	assert.Equal(t, "auditorium", got[2].ResourceID)
	assert.Equal(t, 300, got[2].AttendeeCount)
}

func TestReader_OnlyBookings(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, BookingsFile, `{"bookings":[{"id":"b1","roomId":"gym","date":"2025-06-10","startTime":"10:00","endTime":"11:00"}]}`)

	got, err := NewReader(dir).Requests(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "gym", got[0].ResourceID)
}

func TestReader_Missing(t *testing.T) {
	r := NewReader(t.TempDir())

	_, err := r.Requests(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.Resources(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReader_Corrupted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, RequestsFile, `{"requests":[`)

	_, err := NewReader(dir).Requests(context.Background())
	assert.ErrorIs(t, err, ErrDecode)
}
