package domain

import "time"

// BookingStatus is the derived display status of a booking. It is never stored.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusFinished  BookingStatus = "finished"
	StatusCancelled BookingStatus = "cancelled"
)

// ClassifyStatus derives the status from the scheduled and cancellation timestamps.
// A cancelled booking is cancelled even if it is still in the future.
func ClassifyStatus(scheduledAt time.Time, cancelledAt *time.Time, now time.Time) BookingStatus {
	if cancelledAt != nil {
		return StatusCancelled
	}
	if scheduledAt.After(now) {
		return StatusConfirmed
	}
	return StatusFinished
}
