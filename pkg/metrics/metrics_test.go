package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var pb dto.Metric
	require.NoError(t, c.Write(&pb))
	return pb.GetCounter().GetValue()
}

func TestMetrics_SyncCounters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.IncSyncRefresh("remote")
	m.IncSyncRefresh("remote")
	m.IncSyncRefresh("snapshot")
	m.IncSyncMirrorFailure("patch")

	assert.Equal(t, 2.0, counterValue(t, m.SyncRefreshTotal.WithLabelValues("remote")))
	assert.Equal(t, 1.0, counterValue(t, m.SyncRefreshTotal.WithLabelValues("snapshot")))
	assert.Equal(t, 1.0, counterValue(t, m.SyncMirrorFailuresTotal.WithLabelValues("patch")))
}

func TestMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWithRegisterer("a", prometheus.NewRegistry())
		NewWithRegisterer("b", prometheus.NewRegistry())
	})
}
