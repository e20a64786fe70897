package request

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
	"github.com/m04kA/SMC-RoomBooking/pkg/types"
)

const table = "requests"

var columns = []string{
	"id",
	"resource_id",
	"requester_name",
	"requester_contact",
	"requester_email",
	"booking_date",
	"start_time",
	"end_time",
	"attendee_count",
	"purpose",
	"confirmation_date",
	"confirmation_time",
	"status",
	"payment_status",
	"submitted_at",
	"notes",
}

// Repository реестр заявок в Postgres. Порядок записей = порядок добавления (seq).
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все заявки в порядке добавления
func (r *Repository) List(ctx context.Context) ([]domain.Request, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("seq ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	requests := make([]domain.Request, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan: %v", ErrScanRow, err)
		}
		requests = append(requests, *req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return requests, nil
}

// Create добавляет заявку в конец реестра.
// Повторная запись с тем же id перезаписывает поля, но сохраняет позицию.
func (r *Repository) Create(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(values(req)...).
		Suffix(upsertSuffix()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return req, nil
}

// GetByID получает заявку по id.
// forUpdate блокирует строку до конца транзакции из контекста.
func (r *Repository) GetByID(ctx context.Context, id string, forUpdate bool) (*domain.Request, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	req, err := scanRequest(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id=%s", ErrRequestNotFound, id)
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %v", ErrScanRow, err)
	}

	return req, nil
}

// Update перезаписывает все изменяемые поля заявки
func (r *Repository) Update(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	vals := values(req)
	builder := psqlbuilder.Update(table).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": req.ID})
	// id и submitted_at не меняются
	for i, col := range columns {
		if col == "id" || col == "submitted_at" {
			continue
		}
		builder = builder.Set(col, vals[i])
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: id=%s", ErrRequestNotFound, req.ID)
	}

	return req, nil
}

func upsertSuffix() string {
	suffix := "ON CONFLICT (id) DO UPDATE SET updated_at = NOW()"
	for _, col := range columns {
		if col == "id" {
			continue
		}
		suffix += fmt.Sprintf(", %s = EXCLUDED.%s", col, col)
	}
	return suffix
}

func values(req *domain.Request) []interface{} {
	var confirmDate, confirmTime interface{}
	if req.ConfirmationMeeting != nil {
		confirmDate = req.ConfirmationMeeting.Date
		confirmTime = req.ConfirmationMeeting.Time
	}

	var notes sql.NullString
	if req.Notes != nil {
		notes = sql.NullString{String: *req.Notes, Valid: true}
	}

	return []interface{}{
		req.ID,
		req.ResourceID,
		req.RequesterName,
		req.RequesterContact,
		req.RequesterEmail,
		req.Date,
		req.StartTime,
		req.EndTime,
		req.AttendeeCount,
		req.Purpose,
		confirmDate,
		confirmTime,
		req.Status,
		req.PaymentStatus,
		req.SubmittedAt,
		notes,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*domain.Request, error) {
	var (
		req         domain.Request
		confirmDate types.Date
		confirmTime types.TimeString
		notes       sql.NullString
	)

	err := row.Scan(
		&req.ID,
		&req.ResourceID,
		&req.RequesterName,
		&req.RequesterContact,
		&req.RequesterEmail,
		&req.Date,
		&req.StartTime,
		&req.EndTime,
		&req.AttendeeCount,
		&req.Purpose,
		&confirmDate,
		&confirmTime,
		&req.Status,
		&req.PaymentStatus,
		&req.SubmittedAt,
		&notes,
	)
	if err != nil {
		return nil, err
	}

	if !confirmDate.IsZero() {
		req.ConfirmationMeeting = &domain.ConfirmationMeeting{Date: confirmDate, Time: confirmTime}
	}
	if notes.Valid {
		n := notes.String
		req.Notes = &n
	}

	return &req, nil
}
