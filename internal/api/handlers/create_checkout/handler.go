package create_checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	createCheckout "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_checkout"
)

const (
	msgUnauthorized          = "пользователь не аутентифицирован"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidDate           = "некорректный формат даты, ожидается RFC3339"
	msgPastDate              = "нельзя забронировать прошедшее время"
	msgServiceNotFound       = "услуга не найдена"
	msgSlotTaken             = "выбранное время уже занято"
	msgPaymentsNotConfigured = "онлайн-оплата недоступна"
	msgCheckoutFailed        = "не удалось создать платежную сессию"
)

type Handler struct {
	useCase CreateCheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CreateCheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateCheckoutRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/checkout - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createCheckout.ErrPaymentsNotConfigured):
			h.logger.Error("POST /bookings/checkout - Payments not configured")
			handlers.RespondDomainError(w, err, msgPaymentsNotConfigured)

		case errors.Is(err, createCheckout.ErrPastDate):
			h.logger.Warn("POST /bookings/checkout - Past date: user_id=%s, date=%s", userID, req.Date)
			handlers.RespondDomainError(w, err, msgPastDate)

		case errors.Is(err, createCheckout.ErrServiceNotFound):
			h.logger.Warn("POST /bookings/checkout - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createCheckout.ErrSlotTaken):
			h.logger.Warn("POST /bookings/checkout - Slot taken: service_id=%s, date=%s", req.ServiceID, req.Date)
			handlers.RespondConflict(w, msgSlotTaken)

		default:
			h.logger.Error("POST /bookings/checkout - Failed to create checkout: user_id=%s, error=%v", userID, err)
			handlers.RespondDomainError(w, err, msgCheckoutFailed)
		}
		return
	}

	h.logger.Info("POST /bookings/checkout - Checkout session created: session_id=%s, user_id=%s", result.SessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, &CheckoutResponse{
		SessionID: result.SessionID,
		URL:       result.URL,
	})
}
