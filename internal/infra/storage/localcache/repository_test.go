package localcache

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

func sample(id string) domain.Request {
	return domain.Request{
		ID:            id,
		ResourceID:    "library",
		RequesterName: "Anna",
		Date:          types.Date("2025-06-10"),
		StartTime:     types.TimeString("09:00"),
		EndTime:       types.TimeString("11:00"),
		AttendeeCount: 40,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		SubmittedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRepository_LoadMissing(t *testing.T) {
	repo, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	got, found, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestRepository_SaveOverwrites(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.Save(ctx, []domain.Request{sample("a"), sample("b")}))
	require.NoError(t, repo.Save(ctx, []domain.Request{sample("c")}))

	got, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
	assert.Equal(t, "09:00", got[0].StartTime.String())
}

func TestRepository_EmptyIsFound(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer repo.Close()

	require.NoError(t, repo.Save(ctx, nil))

	got, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
}

func TestRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")

	repo, err := Open(ctx, path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, []domain.Request{sample("a")}))
	require.NoError(t, repo.Close())

	repo, err = Open(ctx, path)
	require.NoError(t, err)
	defer repo.Close()

	got, found, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ID)
}
