package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error
}

// ShopRepository интерфейс каталога барбершопов и услуг
type ShopRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error)
	GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// PaymentGateway интерфейс платежного провайдера
type PaymentGateway interface {
	Configured() bool
	Refund(ctx context.Context, chargeID string) (*stripe.Refund, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingCancelled(refunded bool)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
