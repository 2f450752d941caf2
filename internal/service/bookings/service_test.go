package bookings

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
	bookingRepo "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/stripe"
	"github.com/m04kA/SMC-BarberBooking/pkg/ptr"
)

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

type deps struct {
	bookings *mockBookingRepo
	shops    *mockShopRepo
	payments *mockPayments
	metrics  *mockMetrics
}

func newService() (*Service, *deps) {
	d := &deps{
		bookings: &mockBookingRepo{},
		shops:    &mockShopRepo{},
		payments: &mockPayments{},
		metrics:  &mockMetrics{},
	}
	svc := NewService(d.bookings, d.shops, d.payments, d.metrics, nopLogger{})
	svc.timeProvider = fixedTime{now: now}
	return svc, d
}

func newBooking(userID string, at time.Time) *domain.Booking {
	return &domain.Booking{
		ID:          uuid.New(),
		ShopID:      uuid.New(),
		ServiceID:   uuid.New(),
		UserID:      userID,
		ScheduledAt: at,
		CreatedAt:   now.Add(-48 * time.Hour),
	}
}

func (d *deps) expectCatalog(b *domain.Booking) {
	d.shops.On("GetByID", mock.Anything, b.ShopID).
		Return(&domain.Shop{ID: b.ShopID, Name: "Navalha", Address: "Rua A, 10"}, nil).Maybe()
	d.shops.On("GetService", mock.Anything, b.ServiceID).
		Return(&domain.Service{ID: b.ServiceID, ShopID: b.ShopID, Name: "Corte", PriceInCents: 4500}, nil).Maybe()
}

func TestGetByID_Success(t *testing.T) {
	svc, d := newService()
	b := newBooking("user-1", now.Add(24*time.Hour))

	d.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	d.expectCatalog(b)

	resp, err := svc.GetByID(context.Background(), b.ID, "user-1")

	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.ID)
	assert.Equal(t, "Navalha", resp.ShopName)
	assert.Equal(t, "Corte", resp.ServiceName)
	assert.Equal(t, int64(4500), resp.PriceInCents)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.Paid)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, d := newService()
	id := uuid.New()

	d.bookings.On("GetByID", mock.Anything, id).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := svc.GetByID(context.Background(), id, "user-1")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetByID_OtherUser(t *testing.T) {
	svc, d := newService()
	b := newBooking("user-1", now.Add(24*time.Hour))

	d.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)

	_, err := svc.GetByID(context.Background(), b.ID, "user-2")

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestGetUserBookings_SplitsConfirmedAndFinished(t *testing.T) {
	svc, d := newService()
	past := newBooking("user-1", now.Add(-48*time.Hour))
	cancelledFuture := newBooking("user-1", now.Add(2*time.Hour))
	cancelledFuture.CancelledAt = ptr.Ptr(now.Add(-time.Hour))
	soon := newBooking("user-1", now.Add(3*time.Hour))
	later := newBooking("user-1", now.Add(72*time.Hour))

	list := []*domain.Booking{past, cancelledFuture, soon, later}
	userID := "user-1"
	d.bookings.On("List", mock.Anything, domain.BookingsFilter{UserID: &userID, IncludeCancelled: true}).
		Return(list, nil)
	for _, b := range list {
		d.expectCatalog(b)
	}

	resp, err := svc.GetUserBookings(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, resp.Confirmed, 2)
	assert.Equal(t, soon.ID, resp.Confirmed[0].ID)
	assert.Equal(t, later.ID, resp.Confirmed[1].ID)

	require.Len(t, resp.Finished, 2)
	assert.Equal(t, cancelledFuture.ID, resp.Finished[0].ID)
	assert.Equal(t, string(domain.StatusCancelled), resp.Finished[0].Status)
	assert.Equal(t, past.ID, resp.Finished[1].ID)
	assert.Equal(t, string(domain.StatusFinished), resp.Finished[1].Status)
}

func TestGetUserBookings_Empty(t *testing.T) {
	svc, d := newService()

	d.bookings.On("List", mock.Anything, mock.Anything).Return([]*domain.Booking{}, nil)

	resp, err := svc.GetUserBookings(context.Background(), "user-1")

	require.NoError(t, err)
	assert.NotNil(t, resp.Confirmed)
	assert.NotNil(t, resp.Finished)
	assert.Empty(t, resp.Confirmed)
}

func TestGetUserBookings_RequiresUser(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetUserBookings(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Unpaid(t *testing.T) {
	svc, d := newService()
	b := newBooking("user-1", now.Add(24*time.Hour))

	d.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	d.bookings.On("MarkCancelled", mock.Anything, b.ID, now).Return(nil)
	d.metrics.On("IncBookingCancelled", false).Return()
	d.expectCatalog(b)

	resp, err := svc.Cancel(context.Background(), b.ID, "user-1")

	require.NoError(t, err)
	assert.False(t, resp.Refunded)
	assert.Equal(t, string(domain.StatusCancelled), resp.Booking.Status)
	d.payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
	d.metrics.AssertExpectations(t)
}

func TestCancel_PaidRefundsFirst(t *testing.T) {
	svc, d := newService()
	b := newBooking("user-1", now.Add(24*time.Hour))
	b.ChargeID = ptr.Ptr("ch_123")

	var calls []string
	d.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	d.payments.On("Configured").Return(true)
	d.payments.On("Refund", mock.Anything, "ch_123").
		Run(func(mock.Arguments) { calls = append(calls, "refund") }).
		Return(&stripe.Refund{ID: "re_1", Status: "succeeded"}, nil)
	d.bookings.On("MarkCancelled", mock.Anything, b.ID, now).
		Run(func(mock.Arguments) { calls = append(calls, "cancel") }).
		Return(nil)
	d.metrics.On("IncBookingCancelled", true).Return()
	d.expectCatalog(b)

	resp, err := svc.Cancel(context.Background(), b.ID, "user-1")

	require.NoError(t, err)
	assert.True(t, resp.Refunded)
	assert.Equal(t, []string{"refund", "cancel"}, calls)
}

func TestCancel_RefundFailureKeepsBooking(t *testing.T) {
	svc, d := newService()
	b := newBooking("user-1", now.Add(24*time.Hour))
	b.ChargeID = ptr.Ptr("ch_123")

	d.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	d.payments.On("Configured").Return(true)
	d.payments.On("Refund", mock.Anything, "ch_123").Return(nil, errors.New("charge already refunded"))

	_, err := svc.Cancel(context.Background(), b.ID, "user-1")

	assert.ErrorIs(t, err, ErrRefundFailed)
	assert.ErrorIs(t, err, domain.ErrPayment)
	d.bookings.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_PaidWithoutProviderKey(t *testing.T) {
	svc, d := newService()
	b := newBooking("user-1", now.Add(24*time.Hour))
	b.ChargeID = ptr.Ptr("ch_123")

	d.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	d.payments.On("Configured").Return(false)

	_, err := svc.Cancel(context.Background(), b.ID, "user-1")

	assert.ErrorIs(t, err, ErrPaymentsNotConfigured)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
	d.bookings.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		booking func() *domain.Booking
		userID  string
		wantErr error
	}{
		{
			name:    "other user",
			booking: func() *domain.Booking { return newBooking("user-1", now.Add(time.Hour)) },
			userID:  "user-2",
			wantErr: ErrAccessDenied,
		},
		{
			name: "already cancelled",
			booking: func() *domain.Booking {
				b := newBooking("user-1", now.Add(time.Hour))
				b.CancelledAt = ptr.Ptr(now.Add(-time.Minute))
				return b
			},
			userID:  "user-1",
			wantErr: ErrAlreadyCancelled,
		},
		{
			name:    "in the past",
			booking: func() *domain.Booking { return newBooking("user-1", now.Add(-time.Hour)) },
			userID:  "user-1",
			wantErr: ErrBookingInPast,
		},
		{
			name:    "starting right now",
			booking: func() *domain.Booking { return newBooking("user-1", now) },
			userID:  "user-1",
			wantErr: ErrBookingInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService()
			b := tt.booking()
			d.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)

			_, err := svc.Cancel(context.Background(), b.ID, tt.userID)

			assert.ErrorIs(t, err, tt.wantErr)
			d.bookings.AssertNotCalled(t, "MarkCancelled", mock.Anything, mock.Anything, mock.Anything)
			d.payments.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything)
		})
	}
}

func TestCancel_ConcurrentCancellation(t *testing.T) {
	svc, d := newService()
	b := newBooking("user-1", now.Add(24*time.Hour))

	d.bookings.On("GetByID", mock.Anything, b.ID).Return(b, nil)
	d.bookings.On("MarkCancelled", mock.Anything, b.ID, now).Return(bookingRepo.ErrAlreadyCancelled)

	_, err := svc.Cancel(context.Background(), b.ID, "user-1")

	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	d.metrics.AssertNotCalled(t, "IncBookingCancelled", mock.Anything)
}
