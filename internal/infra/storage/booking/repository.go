package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const (
	// uniqueViolation код ошибки PostgreSQL при нарушении уникальности
	uniqueViolation = "23505"

	constraintActiveSlot      = "bookings_active_slot_uidx"
	constraintCharge          = "bookings_charge_uidx"
	constraintCheckoutSession = "bookings_checkout_session_uidx"
)

var bookingColumns = []string{
	"id",
	"shop_id",
	"service_id",
	"user_id",
	"scheduled_at",
	"cancelled_at",
	"charge_id",
	"checkout_session_id",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Строки никогда не удаляются: отмена только проставляет cancelled_at
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Уникальный индекс по активным броням гарантирует отсутствие двойного бронирования
// даже при гонке двух запросов, прошедших проверку конфликта.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"shop_id",
			"service_id",
			"user_id",
			"scheduled_at",
			"charge_id",
			"checkout_session_id",
		).
		Values(
			booking.ID,
			booking.ShopID,
			booking.ServiceID,
			booking.UserID,
			booking.ScheduledAt,
			booking.ChargeID,
			booking.CheckoutSessionID,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return nil, fmt.Errorf("%w: Create - insert: %v", mapped, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByCheckoutSessionID получает бронирование, созданное из checkout-сессии
func (r *Repository) GetByCheckoutSessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCheckoutSessionID", squirrel.Eq{"checkout_session_id": sessionID})
}

// ExistsActive проверяет, есть ли активная бронь барбершопа ровно на указанное время
func (r *Repository) ExistsActive(ctx context.Context, shopID uuid.UUID, scheduledAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id").
		From("bookings").
		Where(squirrel.Eq{
			"shop_id":      shopID,
			"scheduled_at": scheduledAt,
			"cancelled_at": nil,
		}).
		Limit(1).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsActive - build select query: %v", ErrBuildQuery, err)
	}

	var id uuid.UUID
	err = executor.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsActive - execute query: %v", ErrExecQuery, err)
	}

	return true, nil
}

// List получает бронирования по фильтру, отсортированные по времени
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.ShopID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"shop_id": *filter.ShopID})
	}
	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.ScheduledAt != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"scheduled_at": *filter.ScheduledAt})
	}

	// Фильтрация по периоду (границы включительно)
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_at": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"scheduled_at": *filter.To})
	}

	if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"cancelled_at": nil})
	}

	if filter.OrderDesc {
		selectBuilder = selectBuilder.OrderBy("scheduled_at DESC")
	} else {
		selectBuilder = selectBuilder.OrderBy("scheduled_at ASC")
	}

	// Внутри транзакции блокируем брони барбершопа, чтобы расчет не устарел до записи
	if dbmetrics.IsInTransaction(ctx) && filter.ShopID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// MarkCancelled проставляет время отмены активной брони
func (r *Repository) MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("cancelled_at", cancelledAt).
		Set("updated_at", cancelledAt).
		Where(squirrel.Eq{"id": id, "cancelled_at": nil}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkCancelled - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Различаем отсутствующую и уже отмененную бронь
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrAlreadyCancelled
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBooking(row scanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ShopID,
		&booking.ServiceID,
		&booking.UserID,
		&booking.ScheduledAt,
		&booking.CancelledAt,
		&booking.ChargeID,
		&booking.CheckoutSessionID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.ScheduledAt = booking.ScheduledAt.UTC()
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// mapUniqueViolation возвращает доменную ошибку для нарушения уникального индекса
func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return nil
	}

	switch pqErr.Constraint {
	case constraintActiveSlot:
		return ErrSlotTaken
	case constraintCharge, constraintCheckoutSession:
		return ErrDuplicatePayment
	default:
		return nil
	}
}
