package service

import (
	"github.com/courtbook/backend/internal/domains/bookings/repository"
	"github.com/courtbook/backend/pkg/helper"
)

// Interval is a half-open [StartMin, EndMin) range of minutes since midnight.
type Interval struct {
	StartMin int
	EndMin   int
}

// Overlaps reports whether two half-open intervals intersect. Intervals that
// only touch at a boundary do not overlap.
func Overlaps(a, b Interval) bool {
	return a.StartMin < b.EndMin && b.StartMin < a.EndMin
}

// IsSlotFree reports whether the candidate interval is clear of every booking
// in the list. The caller is expected to pass bookings already narrowed to one
// court and date, with canceled and rejected ones filtered out.
func IsSlotFree(candidate Interval, bookings []repository.Booking) bool {
	for _, booking := range bookings {
		taken := Interval{
			StartMin: helper.MinutesFromPgTime(booking.StartTime),
			EndMin:   helper.MinutesFromPgTime(booking.EndTime),
		}

		if Overlaps(candidate, taken) {
			return false
		}
	}

	return true
}
