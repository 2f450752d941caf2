package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BarberBooking/internal/service/bookings"
)

const (
	msgUnauthorized          = "пользователь не аутентифицирован"
	msgInvalidBookingID      = "некорректный ID бронирования"
	msgNotFound              = "бронирование не найдено"
	msgForbidden             = "доступ запрещен"
	msgAlreadyCancelled      = "бронирование уже отменено"
	msgBookingInPast         = "нельзя отменить прошедшее бронирование"
	msgPaymentsNotConfigured = "возврат оплаты недоступен"
	msgRefundFailed          = "не удалось вернуть оплату, бронирование не отменено"
	msgCannotCancel          = "бронирование не может быть отменено"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%s, user_id=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already cancelled: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgAlreadyCancelled)

		case errors.Is(err, bookings.ErrBookingInPast):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking in the past: booking_id=%s", bookingID)
			handlers.RespondDomainError(w, err, msgBookingInPast)

		case errors.Is(err, bookings.ErrPaymentsNotConfigured):
			h.logger.Error("PATCH /bookings/{id}/cancel - Payments not configured: booking_id=%s", bookingID)
			handlers.RespondDomainError(w, err, msgPaymentsNotConfigured)

		case errors.Is(err, bookings.ErrRefundFailed):
			h.logger.Error("PATCH /bookings/{id}/cancel - Refund failed: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondDomainError(w, err, msgRefundFailed)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondDomainError(w, err, msgCannotCancel)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled successfully: booking_id=%s, user_id=%s, refunded=%t",
		bookingID, userID, result.Refunded)
	handlers.RespondJSON(w, http.StatusOK, result)
}
