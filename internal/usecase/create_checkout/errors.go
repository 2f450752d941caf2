package create_checkout

import (
	"errors"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/reservations"
)

var (
	// ErrPaymentsNotConfigured возвращается, если не задан ключ платежного провайдера
	ErrPaymentsNotConfigured = domain.NewError(domain.ErrConfiguration, "create_checkout: payment provider key is not configured")

	// ErrPastDate возвращается, когда выбранное время уже прошло
	ErrPastDate = reservations.ErrPastDate

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = reservations.ErrServiceNotFound

	// ErrSlotTaken возвращается, когда на это время уже есть активная бронь
	ErrSlotTaken = reservations.ErrSlotTaken

	// ErrCheckoutFailed возвращается, если провайдер не создал платежную сессию
	ErrCheckoutFailed = domain.NewError(domain.ErrPayment, "create_checkout: failed to create checkout session")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "create_checkout: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_checkout: internal error")
)
