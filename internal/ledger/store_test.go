package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
)

func TestStore_PutKeepsOrderAndReplacesInPlace(t *testing.T) {
	s := NewStore()
	assert.False(t, s.Loaded())

	s.Put(domain.Request{ID: "a", Status: domain.StatusPending})
	s.Put(domain.Request{ID: "b", Status: domain.StatusPending})
	s.Put(domain.Request{ID: "a", Status: domain.StatusApproved})

	snap := s.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "a", snap[0].ID)
	assert.Equal(t, domain.StatusApproved, snap[0].Status)
	assert.Equal(t, "b", snap[1].ID)
}

func TestStore_ReplaceMarksLoaded(t *testing.T) {
	s := NewStore()
	s.Replace(nil)

	assert.True(t, s.Loaded())
	assert.Equal(t, 0, s.Len())
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	notes := "original"
	s := NewStore()
	s.Put(domain.Request{ID: "a", Notes: &notes})

	snap := s.Snapshot()
	*snap[0].Notes = "changed"
	snap[0].Purpose = "changed"

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "original", *got.Notes)
	assert.Empty(t, got.Purpose)
}

func TestStore_ApprovedOn(t *testing.T) {
	s := NewStore()
	s.Replace([]domain.Request{
		{ID: "a", ResourceID: "library", Date: "2025-06-10", Status: domain.StatusApproved},
		{ID: "b", ResourceID: "library", Date: "2025-06-10", Status: domain.StatusPending},
		{ID: "c", ResourceID: "library", Date: "2025-06-11", Status: domain.StatusApproved},
		{ID: "d", ResourceID: "gym", Date: "2025-06-10", Status: domain.StatusApproved},
	})

	approved := s.ApprovedOn("library", "2025-06-10")
	require.Len(t, approved, 1)
	assert.Equal(t, "a", approved[0].ID)
}
