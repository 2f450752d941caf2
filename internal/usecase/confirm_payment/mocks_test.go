package confirm_payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
)

type mockPayments struct {
	mock.Mock
}

func (m *mockPayments) WebhookConfigured() bool {
	return m.Called().Bool(0)
}

func (m *mockPayments) ParseEvent(payload []byte, signature string) (*stripe.Event, error) {
	args := m.Called(payload, signature)
	if e, ok := args.Get(0).(*stripe.Event); ok {
		return e, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPayments) GetChargeID(ctx context.Context, sessionID string) (string, error) {
	args := m.Called(ctx, sessionID)
	return args.String(0), args.Error(1)
}

func (m *mockPayments) Refund(ctx context.Context, chargeID string) (*stripe.Refund, error) {
	args := m.Called(ctx, chargeID)
	if r, ok := args.Get(0).(*stripe.Refund); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEvents struct {
	mock.Mock
}

func (m *mockEvents) Claim(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *mockEvents) Release(ctx context.Context, eventID string) error {
	return m.Called(ctx, eventID).Error(0)
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByCheckoutSessionID(ctx context.Context, sessionID string) (*domain.Booking, error) {
	args := m.Called(ctx, sessionID)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReservations struct {
	mock.Mock
}

func (m *mockReservations) CheckPreconditions(ctx context.Context, serviceID uuid.UUID, at, now time.Time) (*domain.Service, error) {
	args := m.Called(ctx, serviceID, at, now)
	if s, ok := args.Get(0).(*domain.Service); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReservations) Reserve(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) IncBookingCreated(source string) {
	m.Called(source)
}

func (m *mockMetrics) IncPaymentEvent(eventType, result string) {
	m.Called(eventType, result)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
