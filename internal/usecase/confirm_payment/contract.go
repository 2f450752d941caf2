package confirm_payment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
)

// PaymentGateway интерфейс платежного провайдера
type PaymentGateway interface {
	WebhookConfigured() bool
	ParseEvent(payload []byte, signature string) (*stripe.Event, error)
	GetChargeID(ctx context.Context, sessionID string) (string, error)
	Refund(ctx context.Context, chargeID string) (*stripe.Refund, error)
}

// EventStore реестр обработанных событий провайдера
type EventStore interface {
	Claim(ctx context.Context, eventID string) (bool, error)
	Release(ctx context.Context, eventID string) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCheckoutSessionID(ctx context.Context, sessionID string) (*domain.Booking, error)
}

// Reservations интерфейс проверки конфликтов и записи брони
type Reservations interface {
	CheckPreconditions(ctx context.Context, serviceID uuid.UUID, at, now time.Time) (*domain.Service, error)
	Reserve(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingCreated(source string)
	IncPaymentEvent(eventType, result string)
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
