package localcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

// RequestsKey единственный ключ, под которым хранится копия реестра
const RequestsKey = "booking_requests"

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// sqlite использует плейсхолдеры "?"
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// Repository локальная копия реестра заявок поверх sqlite
type Repository struct {
	db  *sql.DB
	key string
}

// Open открывает (или создает) файл sqlite и готовит таблицу kv.
// Путь ":memory:" поддерживается для тестов.
func Open(ctx context.Context, path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: Open - open sqlite: %v", ErrExecQuery, err)
	}
	// sqlite не любит параллельных писателей, а :memory: живет в одном соединении
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: Open - create schema: %v", ErrExecQuery, err)
	}
	return &Repository{db: db, key: RequestsKey}, nil
}

// Close закрывает соединение
func (r *Repository) Close() error {
	return r.db.Close()
}

// Load читает сохраненную копию. found=false, если запись еще ни разу не делалась.
func (r *Repository) Load(ctx context.Context) ([]domain.Request, bool, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := builder.Select("value").
		From("kv").
		Where(squirrel.Eq{"key": r.key}).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var blob []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("%w: Load - execute select: %v", ErrExecQuery, err)
	}

	var requests []domain.Request
	if err := json.Unmarshal(blob, &requests); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if requests == nil {
		requests = []domain.Request{}
	}
	return requests, true, nil
}

// Save целиком перезаписывает копию
func (r *Repository) Save(ctx context.Context, requests []domain.Request) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	if requests == nil {
		requests = []domain.Request{}
	}
	blob, err := json.Marshal(requests)
	if err != nil {
		return fmt.Errorf("%w: Save - encode: %v", ErrBuildQuery, err)
	}

	query, args, err := builder.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(r.key, blob, squirrel.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}
