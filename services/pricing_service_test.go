package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resort-frontend/services/bookingapi"
)

func TestNightlyRate_Tiers(t *testing.T) {
	room := bookingapi.RoomRecord{
		Category:                 "Standard",
		PricePerNightSingle:      800,
		PricePerNightDouble:      1200,
		PricePerNightSingleUpto7: 1000,
		PricePerNightDoubleUpto7: 1500,
	}

	var pricing PricingService

	tests := []struct {
		name   string
		nights int
		adults int
		want   float64
	}{
		{"seven nights single uses short-stay tier", 7, 1, 1000},
		{"eight nights single uses standard tier", 8, 1, 800},
		{"three nights single", 3, 1, 1000},
		{"seven nights double", 7, 2, 1500},
		{"eight nights double", 8, 2, 1200},
		{"long stay double", 14, 2, 1200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.NightlyRate(room, tt.nights, tt.adults))
		})
	}
}

func TestIsSoldOut_InclusiveBoundary(t *testing.T) {
	var pricing PricingService
	cutoff := soldOutCutoffs["Garden Villa"]

	assert.True(t, pricing.IsSoldOut("Garden Villa", cutoff),
		"a start date equal to the cutoff is sold out")
	assert.True(t, pricing.IsSoldOut("Garden Villa", cutoff.AddDate(0, 0, -10)))
	assert.False(t, pricing.IsSoldOut("Garden Villa", cutoff.AddDate(0, 0, 1)),
		"the day after the cutoff is bookable")
}

func TestIsSoldOut_NormalizesToMidnight(t *testing.T) {
	var pricing PricingService
	cutoff := soldOutCutoffs["Superior"]

	lateOnCutoffDay := time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 23, 59, 0, 0, time.UTC)
	assert.True(t, pricing.IsSoldOut("Superior", lateOnCutoffDay))
}

func TestIsSoldOut_UnknownCategoryNeverSoldOut(t *testing.T) {
	var pricing PricingService
	assert.False(t, pricing.IsSoldOut("Standard", time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, pricing.IsSoldOut("Nonexistent", time.Now()))
}
