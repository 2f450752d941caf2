package shops

import (
	"errors"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

var (
	// ErrShopNotFound возвращается, когда барбершоп не найден
	ErrShopNotFound = domain.NewError(domain.ErrNotFound, "shops: shop not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = domain.NewError(domain.ErrValidation, "shops: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("shops: internal error")
)
