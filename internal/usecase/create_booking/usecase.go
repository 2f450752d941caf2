package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// UseCase use case для прямого создания бронирования
type UseCase struct {
	reservations Reservations
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations Reservations,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликта и вставка выполняются в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	scheduledAt := domain.NormalizeScheduledAt(req.ScheduledAt)
	uc.logger.Info("CreateBooking: user=%s, service=%s, date=%s",
		req.UserID, req.ServiceID, scheduledAt.Format(time.RFC3339))

	// 2. Время в будущем, услуга существует, слот свободен
	service, err := uc.reservations.CheckPreconditions(ctx, req.ServiceID, scheduledAt, uc.timeProvider.Now())
	if err != nil {
		return nil, uc.wrap("precondition", err)
	}

	// 3. Запись брони
	booking, err := uc.reservations.Reserve(ctx, &domain.Booking{
		ShopID:      service.ShopID,
		ServiceID:   service.ID,
		UserID:      req.UserID,
		ScheduledAt: scheduledAt,
	})
	if err != nil {
		return nil, uc.wrap("reserve", err)
	}

	uc.metrics.IncBookingCreated(domain.SourceDirect)
	uc.logger.Info("CreateBooking: booking id=%s created for user=%s", booking.ID, booking.UserID)

	return &Response{
		ID:          booking.ID,
		ShopID:      booking.ShopID,
		ServiceID:   booking.ServiceID,
		UserID:      booking.UserID,
		ScheduledAt: booking.ScheduledAt,
		Status:      string(booking.Status(uc.timeProvider.Now())),
		CreatedAt:   booking.CreatedAt,
	}, nil
}

// wrap пропускает типизированные ошибки без изменений, остальные оборачивает в ErrInternal
func (uc *UseCase) wrap(step string, err error) error {
	if domain.KindOf(err) != nil {
		uc.logger.Warn("CreateBooking: %s failed: %v", step, err)
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	uc.logger.Error("CreateBooking: %s failed: %v", step, err)
	return fmt.Errorf("%w: CreateBooking - %s: %v", ErrInternal, step, err)
}
