package get_available_slots

import (
	"errors"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var (
	// ErrShopNotFound возвращается, когда барбершоп не найден
	ErrShopNotFound = domain.NewError(domain.ErrNotFound, "get_available_slots: shop not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
