package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями пользователя
type Service struct {
	bookingRepo  BookingRepository
	shopRepo     ShopRepository
	payments     PaymentGateway
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	shopRepo ShopRepository,
	payments PaymentGateway,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		shopRepo:     shopRepo,
		payments:     payments,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только свои брони
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, userID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%s", id, userID)

	booking, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	resp, err := s.toResponses(ctx, []*domain.Booking{booking})
	if err != nil {
		return nil, err
	}

	return &resp[0], nil
}

// GetUserBookings возвращает брони пользователя: подтвержденные и завершенные (прошедшие или отмененные)
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.UserBookingsResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{
		UserID:           &userID,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	all, err := s.toResponses(ctx, bookings)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	resp := &models.UserBookingsResponse{
		Confirmed: make([]models.BookingResponse, 0),
		Finished:  make([]models.BookingResponse, 0),
	}

	// Выборка отсортирована по времени по возрастанию
	for i, booking := range bookings {
		if booking.Status(now) == domain.StatusConfirmed {
			resp.Confirmed = append(resp.Confirmed, all[i])
		}
	}
	for i := len(bookings) - 1; i >= 0; i-- {
		if bookings[i].Status(now) != domain.StatusConfirmed {
			resp.Finished = append(resp.Finished, all[i])
		}
	}

	s.logger.Info("GetUserBookings: user=%s confirmed=%d finished=%d",
		userID, len(resp.Confirmed), len(resp.Finished))

	return resp, nil
}

// Cancel отменяет бронь пользователя
// Для оплаченной брони сначала выполняется возврат; при ошибке возврата бронь остается активной
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, userID string) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: booking id=%s by user=%s", id, userID)

	// 1. Бронь существует и принадлежит пользователю
	booking, err := s.getOwned(ctx, "Cancel", id, userID)
	if err != nil {
		return nil, err
	}

	// 2. Повторная отмена
	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%s already cancelled", id)
		return nil, ErrAlreadyCancelled
	}

	// 3. Прошедшую бронь отменить нельзя
	now := s.timeProvider.Now()
	if !booking.ScheduledAt.After(now) {
		s.logger.Warn("Cancel: booking id=%s is in the past", id)
		return nil, ErrBookingInPast
	}

	// 4. Возврат оплаты
	refunded := false
	if booking.IsPaid() {
		if !s.payments.Configured() {
			s.logger.Error("Cancel: booking id=%s is paid but payment provider key is not configured", id)
			return nil, ErrPaymentsNotConfigured
		}

		if _, err := s.payments.Refund(ctx, *booking.ChargeID); err != nil {
			if errors.Is(err, stripe.ErrNotConfigured) {
				return nil, ErrPaymentsNotConfigured
			}
			s.logger.Error("Cancel: refund for booking id=%s failed: %v", id, err)
			return nil, fmt.Errorf("%w: %v", ErrRefundFailed, err)
		}
		refunded = true
	}

	// 5. Отметка отмены
	if err := s.bookingRepo.MarkCancelled(ctx, id, now); err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrAlreadyCancelled):
			s.logger.Warn("Cancel: booking id=%s cancelled concurrently", id)
			return nil, ErrAlreadyCancelled
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		default:
			s.logger.Error("Cancel: failed to mark booking id=%s cancelled (refunded=%t): %v", id, refunded, err)
			return nil, fmt.Errorf("%w: Cancel - mark cancelled: %v", ErrInternal, err)
		}
	}

	booking.CancelledAt = &now
	booking.UpdatedAt = now
	s.metrics.IncBookingCancelled(refunded)

	resp, err := s.toResponses(ctx, []*domain.Booking{booking})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: booking id=%s cancelled, refunded=%t", id, refunded)

	return &models.CancelBookingResponse{
		Booking:  resp[0],
		Refunded: refunded,
	}, nil
}

func (s *Service) getOwned(ctx context.Context, op string, id uuid.UUID, userID string) (*domain.Booking, error) {
	if id == uuid.Nil || userID == "" {
		return nil, fmt.Errorf("%w: bookingID and userID are required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if !booking.IsBelongsTo(userID) {
		s.logger.Warn("%s: access denied for user=%s to booking id=%s", op, userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// toResponses дополняет брони названиями барбершопов и услуг
func (s *Service) toResponses(ctx context.Context, bookings []*domain.Booking) ([]models.BookingResponse, error) {
	shops := make(map[uuid.UUID]*domain.Shop)
	services := make(map[uuid.UUID]*domain.Service)
	now := s.timeProvider.Now()

	result := make([]models.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		shop, ok := shops[booking.ShopID]
		if !ok {
			var err error
			shop, err = s.shopRepo.GetByID(ctx, booking.ShopID)
			if err != nil {
				s.logger.Error("toResponses: failed to get shop id=%s: %v", booking.ShopID, err)
				return nil, fmt.Errorf("%w: get shop: %v", ErrInternal, err)
			}
			shops[booking.ShopID] = shop
		}

		service, ok := services[booking.ServiceID]
		if !ok {
			var err error
			service, err = s.shopRepo.GetService(ctx, booking.ServiceID)
			if err != nil {
				s.logger.Error("toResponses: failed to get service id=%s: %v", booking.ServiceID, err)
				return nil, fmt.Errorf("%w: get service: %v", ErrInternal, err)
			}
			services[booking.ServiceID] = service
		}

		result = append(result, models.FromDomainBooking(booking, shop, service, now))
	}

	return result, nil
}
