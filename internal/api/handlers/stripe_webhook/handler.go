package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	confirmPayment "github.com/m04kA/SMC-BarberBooking/internal/usecase/confirm_payment"
)

// SignatureHeader заголовок с подписью события
const SignatureHeader = "Stripe-Signature"

// maxBodyBytes максимальный размер тела события
const maxBodyBytes = 65536

const (
	msgInvalidBody      = "не удалось прочитать тело запроса"
	msgInvalidSignature = "некорректная подпись события"
	msgInvalidMetadata  = "некорректные метаданные платежной сессии"
	msgNotConfigured    = "прием платежей не настроен"
	msgPaymentError     = "ошибка платежного провайдера"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/stripe/webhook
// Ответ 2xx подтверждает событие; на остальные статусы провайдер повторит доставку
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.logger.Warn("POST /payments/stripe/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		Payload:   payload,
		Signature: r.Header.Get(SignatureHeader),
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidSignature):
			h.logger.Warn("POST /payments/stripe/webhook - Invalid signature: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignature)

		case errors.Is(err, confirmPayment.ErrInvalidMetadata):
			h.logger.Error("POST /payments/stripe/webhook - Invalid session metadata: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMetadata)

		case errors.Is(err, confirmPayment.ErrWebhookNotConfigured):
			h.logger.Error("POST /payments/stripe/webhook - Webhook not configured")
			handlers.RespondDomainError(w, err, msgNotConfigured)

		default:
			h.logger.Error("POST /payments/stripe/webhook - Failed to process event: %v", err)
			handlers.RespondDomainError(w, err, msgPaymentError)
		}
		return
	}

	if result.RejectReason != "" {
		h.logger.Warn("POST /payments/stripe/webhook - Event %s: booking rejected and refunded: %s",
			result.EventID, result.RejectReason)
	} else {
		h.logger.Info("POST /payments/stripe/webhook - Event %s (%s) processed: %s",
			result.EventID, result.EventType, result.Result)
	}

	handlers.RespondJSON(w, http.StatusOK, &WebhookResponse{
		Received: true,
		Result:   result.Result,
	})
}
