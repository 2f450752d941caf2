package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking represents a reserved service slot in a barbershop.
// A booking is never deleted: cancellation only sets CancelledAt.
type Booking struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	ServiceID   uuid.UUID
	UserID      string
	ScheduledAt time.Time

	CancelledAt *time.Time

	// ChargeID reference to the captured payment, set for paid bookings
	ChargeID *string
	// CheckoutSessionID checkout session the booking was materialized from
	CheckoutSessionID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking has not been cancelled
func (b *Booking) IsActive() bool {
	return b.CancelledAt == nil
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.CancelledAt != nil
}

// IsPaid returns true if the booking carries a payment charge reference
func (b *Booking) IsPaid() bool {
	return b.ChargeID != nil && *b.ChargeID != ""
}

// IsBelongsTo returns true if the booking was made by the user
func (b *Booking) IsBelongsTo(userID string) bool {
	return b.UserID == userID
}

// Status returns the display status of the booking at the given moment
func (b *Booking) Status(now time.Time) BookingStatus {
	return ClassifyStatus(b.ScheduledAt, b.CancelledAt, now)
}

// NormalizeScheduledAt drops seconds and converts the timestamp to UTC,
// which is the form bookings are stored and compared in
func NormalizeScheduledAt(t time.Time) time.Time {
	return t.Truncate(time.Minute).UTC()
}

// BookingsFilter фильтр выборки бронирований
type BookingsFilter struct {
	ShopID *uuid.UUID
	UserID *string

	// From, To границы периода включительно (опционально)
	From *time.Time
	To   *time.Time

	// ScheduledAt точное совпадение времени (опционально)
	ScheduledAt *time.Time

	IncludeCancelled bool
	OrderDesc        bool
}
