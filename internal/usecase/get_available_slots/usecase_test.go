package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	shopRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/shop"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if b, ok := args.Get(0).([]*domain.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var brt = time.FixedZone("BRT", -3*60*60)

func TestExecute_ExcludesOccupiedSlot(t *testing.T) {
	bookings := &mockBookingRepo{}
	shops := &mockShopRepo{}
	uc := NewUseCase(bookings, shops, brt, nopLogger{})
	shopID := uuid.New()
	day := time.Date(2025, 3, 11, 0, 0, 0, 0, brt)

	shops.On("GetByID", mock.Anything, shopID).Return(&domain.Shop{ID: shopID}, nil)
	bookings.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return *f.ShopID == shopID &&
			f.From.Equal(day) &&
			f.To.Equal(day.AddDate(0, 0, 1).Add(-time.Nanosecond)) &&
			!f.IncludeCancelled
	})).Return([]*domain.Booking{
		// 13:00 UTC = 10:00 BRT
		{ShopID: shopID, ScheduledAt: time.Date(2025, 3, 11, 13, 0, 0, 0, time.UTC)},
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{ShopID: shopID, Date: day})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 16)
	assert.NotContains(t, resp.Slots, types.TimeString("10:00"))

	expected := make([]types.TimeString, 0, 16)
	for _, s := range domain.SlotCatalog() {
		if s != "10:00" {
			expected = append(expected, s)
		}
	}
	assert.Equal(t, expected, resp.Slots)
}

func TestExecute_NoBookingsReturnsCatalog(t *testing.T) {
	bookings := &mockBookingRepo{}
	shops := &mockShopRepo{}
	uc := NewUseCase(bookings, shops, time.UTC, nopLogger{})
	shopID := uuid.New()

	shops.On("GetByID", mock.Anything, shopID).Return(&domain.Shop{ID: shopID}, nil)
	bookings.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := uc.Execute(context.Background(), &Request{ShopID: shopID, Date: time.Date(2020, 1, 1, 15, 0, 0, 0, time.UTC)})

	require.NoError(t, err)
	assert.Equal(t, domain.SlotCatalog(), resp.Slots)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), resp.Date)
}

func TestExecute_ShopNotFound(t *testing.T) {
	bookings := &mockBookingRepo{}
	shops := &mockShopRepo{}
	uc := NewUseCase(bookings, shops, time.UTC, nopLogger{})

	shops.On("GetByID", mock.Anything, mock.Anything).Return(nil, shopRepo.ErrShopNotFound)

	_, err := uc.Execute(context.Background(), &Request{ShopID: uuid.New(), Date: time.Now()})

	assert.ErrorIs(t, err, ErrShopNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	bookings.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&mockBookingRepo{}, &mockShopRepo{}, time.UTC, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Date: time.Now()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ShopID: uuid.New()})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_RepositoryFailure(t *testing.T) {
	bookings := &mockBookingRepo{}
	shops := &mockShopRepo{}
	uc := NewUseCase(bookings, shops, time.UTC, nopLogger{})

	shops.On("GetByID", mock.Anything, mock.Anything).Return(&domain.Shop{}, nil)
	bookings.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := uc.Execute(context.Background(), &Request{ShopID: uuid.New(), Date: time.Now()})

	assert.ErrorIs(t, err, ErrInternal)
}
