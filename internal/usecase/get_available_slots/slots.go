package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// occupiedSlots проецирует активные брони на время суток HH:MM
func occupiedSlots(bookings []*domain.Booking, loc *time.Location) map[types.TimeString]struct{} {
	occupied := make(map[types.TimeString]struct{}, len(bookings))
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		occupied[domain.SlotOf(booking.ScheduledAt, loc)] = struct{}{}
	}
	return occupied
}

// filterAvailable возвращает слоты каталога, которых нет среди занятых, сохраняя порядок каталога
func filterAvailable(catalog []types.TimeString, occupied map[types.TimeString]struct{}) []types.TimeString {
	available := make([]types.TimeString, 0, len(catalog))
	for _, slot := range catalog {
		if _, taken := occupied[slot]; taken {
			continue
		}
		available = append(available, slot)
	}
	return available
}
