package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Reservations интерфейс проверки конфликтов и записи брони
type Reservations interface {
	CheckPreconditions(ctx context.Context, serviceID uuid.UUID, at, now time.Time) (*domain.Service, error)
	Reserve(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingCreated(source string)
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
