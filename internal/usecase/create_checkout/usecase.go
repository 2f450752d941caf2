package create_checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
)

// UseCase use case для создания платежной сессии за бронь
// Сама бронь создается после подтверждения оплаты (confirm_payment)
type UseCase struct {
	reservations Reservations
	shopRepo     ShopRepository
	payments     PaymentGateway
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservations Reservations,
	shopRepo ShopRepository,
	payments PaymentGateway,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservations: reservations,
		shopRepo:     shopRepo,
		payments:     payments,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateCheckout: validation failed: %v", err)
		return nil, err
	}

	// 2. Платежный провайдер должен быть настроен
	if !uc.payments.Configured() {
		uc.logger.Error("CreateCheckout: payment provider key is not configured")
		return nil, ErrPaymentsNotConfigured
	}

	scheduledAt := domain.NormalizeScheduledAt(req.ScheduledAt)
	uc.logger.Info("CreateCheckout: user=%s, service=%s, date=%s",
		req.UserID, req.ServiceID, scheduledAt.Format(time.RFC3339))

	// 3. Те же проверки, что и при прямом создании
	service, err := uc.reservations.CheckPreconditions(ctx, req.ServiceID, scheduledAt, uc.timeProvider.Now())
	if err != nil {
		if domain.KindOf(err) != nil {
			uc.logger.Warn("CreateCheckout: precondition failed: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateCheckout: precondition check failed: %v", err)
		return nil, fmt.Errorf("%w: CreateCheckout - precondition: %v", ErrInternal, err)
	}

	shop, err := uc.shopRepo.GetByID(ctx, service.ShopID)
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to get shop id=%s: %v", service.ShopID, err)
		return nil, fmt.Errorf("%w: CreateCheckout - get shop: %v", ErrInternal, err)
	}

	// 4. Платежная сессия с метаданными для создания брони после оплаты
	session, err := uc.payments.CreateCheckoutSession(ctx, stripe.CheckoutRequest{
		ShopName:      shop.Name,
		ServiceName:   service.Name,
		Description:   service.Description,
		ImageURL:      service.ImageURL,
		AmountInCents: service.PriceInCents,
		Metadata: map[string]string{
			domain.MetadataServiceID: service.ID.String(),
			domain.MetadataShopID:    service.ShopID.String(),
			domain.MetadataUserID:    req.UserID,
			domain.MetadataDate:      scheduledAt.Format(time.RFC3339),
		},
	})
	if err != nil {
		uc.logger.Error("CreateCheckout: failed to create session: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	uc.logger.Info("CreateCheckout: session=%s created for user=%s", session.ID, req.UserID)

	return &Response{
		SessionID: session.ID,
		URL:       session.URL,
	}, nil
}
