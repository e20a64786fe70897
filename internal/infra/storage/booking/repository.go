package booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-RoomBooking/internal/domain"
	"github.com/m04kA/SMC-RoomBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RoomBooking/pkg/txmanager"
)

const table = "bookings"

var columns = []string{
	"id",
	"room_id",
	"booking_date",
	"start_time",
	"end_time",
	"purpose",
	"attendees",
	"name",
	"email",
	"contact",
	"status",
}

// Repository журнал бронирований старого формата. Записи только добавляются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в конец журнала. Повторы по id не отсекаются.
func (r *Repository) Append(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if booking.Status == "" {
		booking.Status = domain.BookingStatusAccepted
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns(columns...).
		Values(
			booking.ID,
			booking.ResourceID,
			booking.Date,
			booking.StartTime,
			booking.EndTime,
			booking.Purpose,
			booking.Attendees,
			booking.Name,
			booking.Email,
			booking.Contact,
			booking.Status,
		).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// List возвращает журнал в порядке добавления
func (r *Repository) List(ctx context.Context) ([]domain.Booking, error) {
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

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(
			&b.ID,
			&b.ResourceID,
			&b.Date,
			&b.StartTime,
			&b.EndTime,
			&b.Purpose,
			&b.Attendees,
			&b.Name,
			&b.Email,
			&b.Contact,
			&b.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrExecQuery, err)
	}

	return bookings, nil
}
