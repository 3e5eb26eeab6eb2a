package services

import (
	"time"

	"resort-frontend/services/bookingapi"
)

// soldOutCutoffs holds the categories with a hard sell-out window: the room
// cannot be booked for any start date on or before the cutoff. Categories
// missing here are never sold out.
var soldOutCutoffs = map[string]time.Time{
	"Garden Villa": time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC),
	"Superior":     time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
}

// PricingService derives the "starting from" nightly display price and the
// sold-out flag for a room category. The numbers shown here are only a
// pre-estimate approximation; the estimate endpoint owns the real charge.
type PricingService struct{}

// NightlyRate picks the rate tier for a stay: up to 7 nights uses the
// short-stay tier, longer stays the standard tier, single vs double
// occupancy by whether one adult travels.
func (PricingService) NightlyRate(room bookingapi.RoomRecord, nights, adults int) float64 {
	single := adults == 1
	if nights <= 7 {
		if single {
			return room.PricePerNightSingleUpto7
		}
		return room.PricePerNightDoubleUpto7
	}
	if single {
		return room.PricePerNightSingle
	}
	return room.PricePerNightDouble
}

// IsSoldOut reports whether a category's sell-out window still covers the
// start date. The boundary is inclusive: a start date equal to the cutoff is
// sold out. Both sides are normalized to midnight before comparison.
func (PricingService) IsSoldOut(category string, start time.Time) bool {
	cutoff, ok := soldOutCutoffs[category]
	if !ok {
		return false
	}
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	cutoffDay := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, time.UTC)
	return !day.After(cutoffDay)
}
