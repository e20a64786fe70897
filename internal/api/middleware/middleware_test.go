package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAdminOnly(t *testing.T) {
	tests := []struct {
		name    string
		isAdmin bool
		key     string
		header  string
		want    int
	}{
		{name: "admin with key", isAdmin: true, key: "k", header: "k", want: http.StatusNoContent},
		{name: "wrong key", isAdmin: true, key: "k", header: "x", want: http.StatusForbidden},
		{name: "no header", isAdmin: true, key: "k", want: http.StatusForbidden},
		{name: "user role", isAdmin: false, key: "k", header: "k", want: http.StatusForbidden},
		{name: "empty key never matches", isAdmin: true, key: "", header: "", want: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/requests/a/accept", nil)
			if tt.header != "" {
				req.Header.Set(AdminKeyHeader, tt.header)
			}
			rec := httptest.NewRecorder()
			AdminOnly(tt.isAdmin, tt.key)(ok).ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.NewWithRegisterer("test", prometheus.NewRegistry())

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.Handle("/requests/{requestId}", ok)

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/requests/"+id, nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	var pb dto.Metric
	require.NoError(t, m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/requests/{requestId}", "204").Write(&pb))
	assert.Equal(t, 2.0, pb.GetCounter().GetValue())
}

func TestRequireLoaded(t *testing.T) {
	loaded := false
	h := RequireLoaded(func() bool { return loaded })(ok)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources/library/availability", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	loaded = true
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/resources/library/availability", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
