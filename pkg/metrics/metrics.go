package metrics

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics набор метрик сервиса
type Metrics struct {
	registerer prometheus.Registerer

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	SyncRefreshTotal        *prometheus.CounterVec
	SyncMirrorFailuresTotal *prometheus.CounterVec

	DBQueryDuration *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в реестре по умолчанию (его отдает promhttp.Handler)
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registerer: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		SyncRefreshTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "sync_refresh_total",
			Help:        "Ledger refreshes by the tier that answered",
			ConstLabels: constLabels,
		}, []string{"tier"}),
		SyncMirrorFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "sync_mirror_failures_total",
			Help:        "Failed best-effort writes by operation",
			ConstLabels: constLabels,
		}, []string{"op"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SyncRefreshTotal,
		m.SyncMirrorFailuresTotal,
		m.DBQueryDuration,
	)

	return m
}

// IncSyncRefresh учитывает обновление реестра из указанного уровня
func (m *Metrics) IncSyncRefresh(tier string) {
	m.SyncRefreshTotal.WithLabelValues(tier).Inc()
}

// IncSyncMirrorFailure учитывает неудачную запись в удаленный реестр или локальную копию
func (m *Metrics) IncSyncMirrorFailure(op string) {
	m.SyncMirrorFailuresTotal.WithLabelValues(op).Inc()
}

// RegisterDBStats регистрирует стандартный сборщик статистики пула соединений
func (m *Metrics) RegisterDBStats(db *sql.DB, dbName string) {
	m.registerer.MustRegister(collectors.NewDBStatsCollector(db, dbName))
}
