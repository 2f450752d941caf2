package get_shop

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/service/shops/models"
)

type ShopService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ShopDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
