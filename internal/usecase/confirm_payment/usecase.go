package confirm_payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
	"github.com/m04kA/SMC-BarberBooking/internal/service/reservations"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

// paymentStatusPaid статус оплаченной checkout-сессии
const paymentStatusPaid = "paid"

// UseCase use case создания брони по уведомлению об оплате
//
// Повторная доставка события не создает вторую бронь:
// ID события фиксируется в Redis, а ID checkout-сессии уникален в таблице броней.
// Если после оплаты бронь невозможна (время прошло, слот занят), оплата возвращается.
type UseCase struct {
	payments     PaymentGateway
	events       EventStore
	bookingRepo  BookingRepository
	reservations Reservations
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	payments PaymentGateway,
	events EventStore,
	bookingRepo BookingRepository,
	reservations Reservations,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		payments:     payments,
		events:       events,
		bookingRepo:  bookingRepo,
		reservations: reservations,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case
func (uc *UseCase) Execute(ctx context.Context, req *Request) (resp *Response, err error) {
	// 1. Ключи провайдера должны быть настроены
	if !uc.payments.WebhookConfigured() {
		uc.logger.Error("ConfirmPayment: payment provider keys are not configured")
		return nil, ErrWebhookNotConfigured
	}

	// 2. Проверка подписи
	event, err := uc.payments.ParseEvent(req.Payload, req.Signature)
	if err != nil {
		uc.logger.Warn("ConfirmPayment: rejected event: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	resp = &Response{EventID: event.ID, EventType: event.Type}

	// 3. Бронь создается только по завершенной оплате
	if event.Type != domain.EventCheckoutSessionCompleted || event.Session == nil {
		uc.logger.Info("ConfirmPayment: event %s of type %s ignored", event.ID, event.Type)
		return uc.finish(resp, ResultIgnored), nil
	}
	session := event.Session

	if session.PaymentStatus != "" && session.PaymentStatus != paymentStatusPaid {
		uc.logger.Warn("ConfirmPayment: session=%s payment status %s, skipping", session.ID, session.PaymentStatus)
		return uc.finish(resp, ResultIgnored), nil
	}

	// 4. Отметка события; ошибка Redis не блокирует обработку
	claimed, claimErr := uc.events.Claim(ctx, event.ID)
	if claimErr != nil {
		uc.logger.Warn("ConfirmPayment: event store unavailable, relying on database uniqueness: %v", claimErr)
	} else if !claimed {
		uc.logger.Info("ConfirmPayment: event %s already processed", event.ID)
		return uc.finish(resp, ResultDuplicate), nil
	}

	// После временной ошибки провайдер повторит доставку, отметку нужно снять.
	// Некорректные метаданные повторная доставка не исправит
	defer func() {
		if err != nil && claimErr == nil && !errors.Is(err, domain.ErrValidation) {
			if releaseErr := uc.events.Release(ctx, event.ID); releaseErr != nil {
				uc.logger.Error("ConfirmPayment: failed to release event %s: %v", event.ID, releaseErr)
			}
		}
	}()

	// 5. Метаданные брони
	md, err := parseMetadata(session.Metadata)
	if err != nil {
		uc.logger.Error("ConfirmPayment: session=%s: %v", session.ID, err)
		uc.metrics.IncPaymentEvent(event.Type, ResultFailed)
		return nil, err
	}

	// 6. Бронь по этой сессии уже создана
	existing, err := uc.bookingRepo.GetByCheckoutSessionID(ctx, session.ID)
	switch {
	case err == nil:
		uc.logger.Info("ConfirmPayment: session=%s already has booking id=%s", session.ID, existing.ID)
		resp.BookingID = ptr.Ptr(existing.ID)
		return uc.finish(resp, ResultDuplicate), nil
	case !errors.Is(err, bookingRepo.ErrBookingNotFound):
		uc.logger.Error("ConfirmPayment: failed to look up session=%s: %v", session.ID, err)
		uc.metrics.IncPaymentEvent(event.Type, ResultFailed)
		return nil, fmt.Errorf("%w: ConfirmPayment - get booking by session: %v", ErrInternal, err)
	}

	// 7. Списание, на которое будет ссылаться бронь
	chargeID, err := uc.payments.GetChargeID(ctx, session.ID)
	if err != nil {
		uc.logger.Error("ConfirmPayment: session=%s: %v", session.ID, err)
		uc.metrics.IncPaymentEvent(event.Type, ResultFailed)
		return nil, fmt.Errorf("%w: %v", ErrPaymentLookup, err)
	}

	// 8. Те же проверки, что и при прямом создании
	service, err := uc.reservations.CheckPreconditions(ctx, md.ServiceID, md.ScheduledAt, uc.timeProvider.Now())
	if err == nil && service.ShopID != md.ShopID {
		err = reservations.ErrShopMismatch
	}
	if err != nil {
		if domain.KindOf(err) == nil {
			uc.logger.Error("ConfirmPayment: precondition check failed: %v", err)
			uc.metrics.IncPaymentEvent(event.Type, ResultFailed)
			return nil, fmt.Errorf("%w: ConfirmPayment - precondition: %v", ErrInternal, err)
		}
		return uc.reject(ctx, resp, chargeID, err)
	}

	// 9. Запись брони со ссылкой на списание
	booking, err := uc.reservations.Reserve(ctx, &domain.Booking{
		ShopID:            service.ShopID,
		ServiceID:         service.ID,
		UserID:            md.UserID,
		ScheduledAt:       md.ScheduledAt,
		ChargeID:          ptr.Ptr(chargeID),
		CheckoutSessionID: ptr.Ptr(session.ID),
	})
	switch {
	case errors.Is(err, reservations.ErrDuplicatePayment):
		uc.logger.Info("ConfirmPayment: charge=%s already linked to a booking", chargeID)
		return uc.finish(resp, ResultDuplicate), nil
	case errors.Is(err, reservations.ErrSlotTaken):
		return uc.reject(ctx, resp, chargeID, err)
	case err != nil:
		uc.logger.Error("ConfirmPayment: failed to reserve: %v", err)
		uc.metrics.IncPaymentEvent(event.Type, ResultFailed)
		return nil, fmt.Errorf("%w: ConfirmPayment - reserve: %v", ErrInternal, err)
	}

	uc.metrics.IncBookingCreated(domain.SourceCheckout)
	uc.logger.Info("ConfirmPayment: booking id=%s created for user=%s at %s",
		booking.ID, booking.UserID, booking.ScheduledAt.Format(time.RFC3339))

	resp.BookingID = ptr.Ptr(booking.ID)
	return uc.finish(resp, ResultCreated), nil
}

// reject возвращает оплату, если бронь по оплаченной сессии невозможна
func (uc *UseCase) reject(ctx context.Context, resp *Response, chargeID string, reason error) (*Response, error) {
	uc.logger.Warn("ConfirmPayment: booking rejected after payment, refunding charge=%s: %v", chargeID, reason)

	if _, err := uc.payments.Refund(ctx, chargeID); err != nil {
		if errors.Is(err, stripe.ErrNotConfigured) {
			return nil, ErrWebhookNotConfigured
		}
		uc.logger.Error("ConfirmPayment: refund of charge=%s failed: %v", chargeID, err)
		uc.metrics.IncPaymentEvent(resp.EventType, ResultFailed)
		return nil, fmt.Errorf("%w: %v", ErrRefundFailed, err)
	}

	resp.RejectReason = reason.Error()
	return uc.finish(resp, ResultRefunded), nil
}

func (uc *UseCase) finish(resp *Response, result string) *Response {
	resp.Result = result
	uc.metrics.IncPaymentEvent(resp.EventType, result)
	return resp
}
