package bookings

import (
	"errors"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = domain.NewError(domain.ErrNotFound, "bookings: booking not found")

	// ErrAccessDenied возвращается, когда бронь принадлежит другому пользователю
	ErrAccessDenied = domain.NewError(domain.ErrForbidden, "bookings: access denied")

	// ErrAlreadyCancelled возвращается при повторной отмене
	ErrAlreadyCancelled = domain.NewError(domain.ErrConflict, "bookings: booking already cancelled")

	// ErrBookingInPast возвращается при попытке отменить прошедшую бронь
	ErrBookingInPast = domain.NewError(domain.ErrTemporal, "bookings: cannot cancel a past booking")

	// ErrPaymentsNotConfigured возвращается, если для возврата оплаты не задан ключ провайдера
	ErrPaymentsNotConfigured = domain.NewError(domain.ErrConfiguration, "bookings: payment provider key is not configured")

	// ErrRefundFailed возвращается, если возврат оплаты не прошел; бронь остается активной
	ErrRefundFailed = domain.NewError(domain.ErrPayment, "bookings: refund failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
