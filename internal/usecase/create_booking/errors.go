package create_booking

import (
	"errors"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/reservations"
)

var (
	// ErrPastDate возвращается, когда выбранное время уже прошло
	ErrPastDate = reservations.ErrPastDate

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = reservations.ErrServiceNotFound

	// ErrSlotTaken возвращается, когда на это время уже есть активная бронь
	ErrSlotTaken = reservations.ErrSlotTaken

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
