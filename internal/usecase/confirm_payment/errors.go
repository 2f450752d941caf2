package confirm_payment

import (
	"errors"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var (
	// ErrWebhookNotConfigured возвращается, если не заданы ключи платежного провайдера
	ErrWebhookNotConfigured = domain.NewError(domain.ErrConfiguration, "confirm_payment: payment provider keys are not configured")

	// ErrInvalidSignature возвращается, если подпись или тело события некорректны
	ErrInvalidSignature = domain.NewError(domain.ErrValidation, "confirm_payment: invalid webhook signature")

	// ErrInvalidMetadata возвращается, если метаданные сессии не описывают бронь
	ErrInvalidMetadata = domain.NewError(domain.ErrValidation, "confirm_payment: invalid checkout session metadata")

	// ErrPaymentLookup возвращается, если не удалось получить списание по сессии
	ErrPaymentLookup = domain.NewError(domain.ErrPayment, "confirm_payment: failed to get charge for session")

	// ErrRefundFailed возвращается, если бронь невозможна, а возврат оплаты не прошел
	ErrRefundFailed = domain.NewError(domain.ErrPayment, "confirm_payment: booking rejected and refund failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_payment: internal error")
)
