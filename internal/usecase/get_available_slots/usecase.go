package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	shopRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/shop"
)

// UseCase use case для получения свободных слотов барбершопа на день
type UseCase struct {
	bookingRepo BookingRepository
	shopRepo    ShopRepository
	location    *time.Location
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
// location - локация, в которой считаются границы дня и время слотов
func NewUseCase(
	bookingRepo BookingRepository,
	shopRepo ShopRepository,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		bookingRepo: bookingRepo,
		shopRepo:    shopRepo,
		location:    location,
		logger:      logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Прошедшие дни не отклоняются: возвращается каталог за вычетом занятых слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: shop=%s, date=%s", req.ShopID, req.Date.In(uc.location).Format(domain.DateFormat))

	// 2. Проверяем существование барбершопа
	if _, err := uc.shopRepo.GetByID(ctx, req.ShopID); err != nil {
		if errors.Is(err, shopRepo.ErrShopNotFound) {
			uc.logger.Warn("GetAvailableSlots: shop id=%s not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get shop id=%s: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 3. Активные брони за день [начало дня, конец дня]
	start, end := domain.DayBounds(req.Date, uc.location)
	bookings, err := uc.bookingRepo.List(ctx, domain.BookingsFilter{
		ShopID: &req.ShopID,
		From:   &start,
		To:     &end,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Каталог за вычетом занятых слотов
	slots := filterAvailable(domain.SlotCatalog(), occupiedSlots(bookings, uc.location))

	uc.logger.Info("GetAvailableSlots: %d/%d slots available", len(slots), len(domain.SlotCatalog()))

	return &Response{
		Date:   start,
		ShopID: req.ShopID,
		Slots:  slots,
	}, nil
}
