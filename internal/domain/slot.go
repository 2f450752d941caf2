package domain

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

// slotCatalog bookable times of a business day, in display order
var slotCatalog = []types.TimeString{
	"09:00", "09:30",
	"10:00", "10:30",
	"11:00", "11:30",
	"12:00", "12:30",
	"13:00", "13:30",
	"14:00", "14:30",
	"15:00", "15:30",
	"16:00", "16:30",
	"17:00",
}

// SlotCatalog returns a copy of the fixed slot catalog
func SlotCatalog() []types.TimeString {
	out := make([]types.TimeString, len(slotCatalog))
	copy(out, slotCatalog)
	return out
}

// IsCatalogSlot returns true if the time of day is one of the catalog slots
func IsCatalogSlot(slot types.TimeString) bool {
	for _, s := range slotCatalog {
		if s == slot {
			return true
		}
	}
	return false
}

// SlotOf projects a timestamp onto its HH:MM time of day in loc
func SlotOf(t time.Time, loc *time.Location) types.TimeString {
	return types.NewTimeString(t.In(loc))
}

// DayBounds returns the first and the last instant of the calendar day in loc
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := day.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
