package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/pkg/psqlbuilder"
)

var recordColumns = []string{
	"id",
	"date",
	"hour",
	"duration",
	"table_id",
	"repeat",
}

// Repository репозиторий бронирований и событий заведения.
// Альтернатива HTTP backend: читает те же три списка напрямую из PostgreSQL.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBookings получает разовые бронирования гостей в окне дат
func (r *Repository) GetBookings(ctx context.Context, window domain.DateWindow) ([]domain.Record, error) {
	query, args, err := bookingsQuery(window).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBookings - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRecords(ctx, "GetBookings", domain.KindBooking, query, args)
}

// GetEvents получает разовые события в окне дат
func (r *Repository) GetEvents(ctx context.Context, window domain.DateWindow) ([]domain.Record, error) {
	query, args, err := eventsQuery(window).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetEvents - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRecords(ctx, "GetEvents", domain.KindEvent, query, args)
}

// GetRepeatingEvents получает повторяющиеся события, начавшиеся не позже конца окна
func (r *Repository) GetRepeatingEvents(ctx context.Context, window domain.DateWindow) ([]domain.Record, error) {
	query, args, err := repeatingEventsQuery(window).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRepeatingEvents - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRecords(ctx, "GetRepeatingEvents", domain.KindRepeatingEvent, query, args)
}

// CreateReservation сохраняет бронирование гостя
func (r *Repository) CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := insertReservationQuery(reservation).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateReservation - build insert query: %v", ErrBuildQuery, err)
	}

	created := *reservation
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateReservation - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

func bookingsQuery(window domain.DateWindow) squirrel.SelectBuilder {
	return psqlbuilder.Select("id", "date", "hour", "duration", "table_id", "NULL AS repeat").
		From("bookings").
		Where(squirrel.GtOrEq{"date": string(domain.FormatDate(window.Min))}).
		Where(squirrel.LtOrEq{"date": string(domain.FormatDate(window.Max))}).
		OrderBy("date ASC", "hour ASC")
}

func eventsQuery(window domain.DateWindow) squirrel.SelectBuilder {
	return psqlbuilder.Select(recordColumns...).
		From("events").
		Where(squirrel.Or{
			squirrel.Eq{"repeat": nil},
			squirrel.Eq{"repeat": ""},
		}).
		Where(squirrel.GtOrEq{"date": string(domain.FormatDate(window.Min))}).
		Where(squirrel.LtOrEq{"date": string(domain.FormatDate(window.Max))}).
		OrderBy("date ASC", "hour ASC")
}

// repeatingEventsQuery у повторяющихся событий дата - это начало повторения (или NULL),
// поэтому фильтруем только по верхней границе окна
func repeatingEventsQuery(window domain.DateWindow) squirrel.SelectBuilder {
	return psqlbuilder.Select(recordColumns...).
		From("events").
		Where(squirrel.NotEq{"repeat": nil}).
		Where(squirrel.NotEq{"repeat": ""}).
		Where(squirrel.Or{
			squirrel.Eq{"date": nil},
			squirrel.LtOrEq{"date": string(domain.FormatDate(window.Max))},
		}).
		OrderBy("id ASC")
}

func insertReservationQuery(reservation *domain.Reservation) squirrel.InsertBuilder {
	starters := reservation.Starters
	if starters == nil {
		starters = []string{}
	}

	return psqlbuilder.Insert("bookings").
		Columns(
			"date",
			"hour",
			"duration",
			"table_id",
			"ppl",
			"starters",
			"phone",
			"address",
		).
		Values(
			string(reservation.Date),
			reservation.Hour,
			reservation.Duration,
			string(reservation.Table),
			reservation.People,
			pq.Array(starters),
			reservation.Phone,
			reservation.Address,
		).
		Suffix("RETURNING id")
}

// queryRecords выполняет запрос и сканирует строки в записи указанного вида
func (r *Repository) queryRecords(ctx context.Context, op string, kind domain.RecordKind, query string, args []interface{}) ([]domain.Record, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var (
			id       int64
			date     sql.NullTime
			hour     string
			duration float64
			table    string
			repeat   sql.NullString
		)

		if err := rows.Scan(&id, &date, &hour, &duration, &table, &repeat); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		var dateKey domain.DateKey
		if date.Valid {
			dateKey = domain.FormatDate(date.Time)
		}

		var record domain.Record
		switch kind {
		case domain.KindBooking:
			record = domain.NewBooking(dateKey, hour, duration, domain.ResourceID(table))
		case domain.KindEvent:
			record = domain.NewEvent(dateKey, hour, duration, domain.ResourceID(table))
		case domain.KindRepeatingEvent:
			record = domain.NewRepeatingEvent(domain.RepeatRule(repeat.String), hour, duration, domain.ResourceID(table))
		}
		record.ID = id

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return records, nil
}
