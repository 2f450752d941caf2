package reservations

import (
	"errors"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var (
	// ErrPastDate возвращается, если время брони не строго в будущем
	ErrPastDate = domain.NewError(domain.ErrTemporal, "reservations: selected date and time have already passed")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = domain.NewError(domain.ErrNotFound, "reservations: service not found")

	// ErrShopMismatch возвращается, если услуга не принадлежит указанному барбершопу
	ErrShopMismatch = domain.NewError(domain.ErrValidation, "reservations: service does not belong to the shop")

	// ErrSlotTaken возвращается, если на это время у барбершопа уже есть активная бронь
	ErrSlotTaken = domain.NewError(domain.ErrConflict, "reservations: selected date and time are already booked")

	// ErrDuplicatePayment возвращается, если платеж уже привязан к брони
	ErrDuplicatePayment = domain.NewError(domain.ErrConflict, "reservations: payment already used for a booking")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("reservations: internal error")
)
