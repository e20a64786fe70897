package dbmetrics

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/m04kA/SMC-RoomBooking/pkg/metrics"
)

// DB обертка над *sql.DB, замеряющая длительность запросов вне транзакций.
// Удовлетворяет txmanager.DBExecutor и txmanager.TxBeginner.
type DB struct {
	*sql.DB
	metrics *metrics.Metrics
}

// Wrap оборачивает db и регистрирует сборщик статистики пула
func Wrap(db *sql.DB, m *metrics.Metrics, dbName string) *DB {
	m.RegisterDBStats(db, dbName)
	return &DB{DB: db, metrics: m}
}

func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer d.observe(query, time.Now())
	return d.DB.ExecContext(ctx, query, args...)
}

func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer d.observe(query, time.Now())
	return d.DB.QueryContext(ctx, query, args...)
}

func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer d.observe(query, time.Now())
	return d.DB.QueryRowContext(ctx, query, args...)
}

func (d *DB) observe(query string, started time.Time) {
	d.metrics.DBQueryDuration.WithLabelValues(Operation(query)).Observe(time.Since(started).Seconds())
}

// Operation первое ключевое слово запроса в нижнем регистре: select, insert, update...
func Operation(query string) string {
	fields := strings.Fields(query)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToLower(fields[0])
}
