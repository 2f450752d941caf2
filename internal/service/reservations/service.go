package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	shopRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/shop"
)

// Service проверка конфликтов и запись брони.
// Общая часть прямого создания, checkout и создания после оплаты.
type Service struct {
	bookingRepo BookingRepository
	serviceRepo ServiceRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		serviceRepo: serviceRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// HasConflict проверяет, занято ли у барбершопа ровно это время активной бронью
// Брони с разницей даже в минуту не конфликтуют
func (s *Service) HasConflict(ctx context.Context, shopID uuid.UUID, at time.Time) (bool, error) {
	exists, err := s.bookingRepo.ExistsActive(ctx, shopID, domain.NormalizeScheduledAt(at))
	if err != nil {
		return false, fmt.Errorf("%w: HasConflict - check bookings: %v", ErrInternal, err)
	}
	return exists, nil
}

// CheckPreconditions проверяет возможность брони услуги на время at
// Порядок проверок: время в будущем, услуга существует, слот свободен
func (s *Service) CheckPreconditions(ctx context.Context, serviceID uuid.UUID, at, now time.Time) (*domain.Service, error) {
	if !at.After(now) {
		return nil, ErrPastDate
	}

	service, err := s.serviceRepo.GetService(ctx, serviceID)
	if err != nil {
		if errors.Is(err, shopRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("%w: CheckPreconditions - get service: %v", ErrInternal, err)
	}

	conflict, err := s.HasConflict(ctx, service.ShopID, at)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, ErrSlotTaken
	}

	return service, nil
}

// Reserve записывает бронь в сериализуемой транзакции: повторная проверка конфликта и вставка
// Уникальный индекс активных броней закрывает гонку, если проверку прошли два запроса
func (s *Service) Reserve(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ScheduledAt = domain.NormalizeScheduledAt(booking.ScheduledAt)

	var created *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		exists, err := s.bookingRepo.ExistsActive(txCtx, booking.ShopID, booking.ScheduledAt)
		if err != nil {
			return fmt.Errorf("%w: Reserve - check bookings: %v", ErrInternal, err)
		}
		if exists {
			return ErrSlotTaken
		}

		created, err = s.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotTaken):
				return ErrSlotTaken
			case errors.Is(err, bookingRepo.ErrDuplicatePayment):
				return ErrDuplicatePayment
			default:
				return fmt.Errorf("%w: Reserve - create booking: %v", ErrInternal, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			s.logger.Warn("Reserve: shop=%s at=%s already booked", booking.ShopID, booking.ScheduledAt.Format(time.RFC3339))
		}
		return nil, err
	}

	s.logger.Info("Reserve: booking id=%s shop=%s at=%s created",
		created.ID, created.ShopID, created.ScheduledAt.Format(time.RFC3339))

	return created, nil
}
