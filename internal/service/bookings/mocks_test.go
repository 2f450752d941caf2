package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if b, ok := args.Get(0).(*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if b, ok := args.Get(0).([]*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) MarkCancelled(ctx context.Context, id uuid.UUID, cancelledAt time.Time) error {
	args := m.Called(ctx, id, cancelledAt)
	return args.Error(0)
}

type mockShopRepo struct {
	mock.Mock
}

func (m *mockShopRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.Shop); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShopRepo) GetService(ctx context.Context, id uuid.UUID) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.Service); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPayments struct {
	mock.Mock
}

func (m *mockPayments) Configured() bool {
	return m.Called().Bool(0)
}

func (m *mockPayments) Refund(ctx context.Context, chargeID string) (*stripe.Refund, error) {
	args := m.Called(ctx, chargeID)
	if r, ok := args.Get(0).(*stripe.Refund); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) IncBookingCancelled(refunded bool) {
	m.Called(refunded)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
