package list_shops

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/shops/models"
)

type ShopService interface {
	List(ctx context.Context) ([]models.ShopResponse, error)
	ListPopular(ctx context.Context) ([]models.ShopResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
