package shops

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ShopRepository интерфейс каталога барбершопов
type ShopRepository interface {
	List(ctx context.Context) ([]*domain.Shop, error)
	ListPopular(ctx context.Context, limit uint64) ([]*domain.Shop, error)
	SearchByServiceName(ctx context.Context, serviceName string) ([]*domain.Shop, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error)
	ListServices(ctx context.Context, shopID uuid.UUID) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
