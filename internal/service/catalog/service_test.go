package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/logger"
)

type fakeSource struct {
	resources []domain.Resource
	err       error
}

func (f *fakeSource) Resources(ctx context.Context) ([]domain.Resource, error) {
	return f.resources, f.err
}

func TestLoad_PrefersSnapshot(t *testing.T) {
	src := &fakeSource{resources: []domain.Resource{{ID: "hall", Name: "Hall", Capacity: 10}}}

	s := Load(context.Background(), src, []domain.Resource{{ID: "cfg", Name: "Cfg", Capacity: 5}}, logger.NewNop())

	_, err := s.Get("hall")
	require.NoError(t, err)
	_, err = s.Get("cfg")
	assert.True(t, IsNotFound(err))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestLoad_FallsBackToConfigThenBuiltIn(t *testing.T) {
	src := &fakeSource{err: errors.New("no file")}

	s := Load(context.Background(), src, []domain.Resource{{ID: "cfg", Name: "Cfg", Capacity: 5}}, logger.NewNop())
	_, err := s.Get("cfg")
	require.NoError(t, err)

	s = Load(context.Background(), src, nil, logger.NewNop())
	library, err := s.Get("library")
	require.NoError(t, err)
	assert.Equal(t, 100, library.Capacity)

	grounds, err := s.Get("grounds")
	require.NoError(t, err)
	assert.True(t, grounds.IsClosedOn("2025-06-14"))
}

func TestNewService_DropsInvalidAndDuplicates(t *testing.T) {
	s := NewService([]domain.Resource{
		{ID: "b", Name: "Beta", Capacity: 1},
		{ID: "a", Name: "Alpha", Capacity: 2},
		{ID: "a", Name: "Alpha again", Capacity: 3},
		{ID: "", Name: "No id", Capacity: 3},
		{ID: "z", Name: "Zero", Capacity: 0},
	})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Alpha", list[0].Name)
	assert.Equal(t, 2, list[0].Capacity)
	assert.Equal(t, "Beta", list[1].Name)
}
