package search_shops

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/service/shops/models"
)

type ShopService interface {
	Search(ctx context.Context, serviceName string) ([]models.ShopResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
