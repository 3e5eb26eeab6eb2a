package services

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resort-frontend/models"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	orig := timeNow
	fixed := time.Date(2026, time.March, 1, 14, 30, 0, 0, time.UTC)
	timeNow = func() time.Time { return fixed }
	t.Cleanup(func() { timeNow = orig })
	return fixed
}

func TestDecodeSelection_Defaults(t *testing.T) {
	fixedNow(t)

	sel := DecodeSelection(url.Values{})

	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), sel.CheckIn)
	assert.Equal(t, time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC), sel.CheckOut)
	assert.Equal(t, 1, sel.Rooms)
	assert.Equal(t, 1, sel.Adults)
	assert.Equal(t, 0, sel.Children)
	assert.Equal(t, DefaultRoomCategory, sel.RoomCategory)
	assert.Equal(t, models.CaregiverNone, sel.Caregiver.Kind)
	assert.False(t, sel.TransferRequested)
}

func TestDecodeSelection_GarbageFallsBack(t *testing.T) {
	fixedNow(t)

	tests := []struct {
		name   string
		values url.Values
	}{
		{
			name: "non-numeric counts",
			values: url.Values{
				"rooms":    {"abc"},
				"adults":   {"??"},
				"children": {"many"},
			},
		},
		{
			name: "negative counts",
			values: url.Values{
				"rooms":    {"-2"},
				"adults":   {"0"},
				"children": {"-1"},
			},
		},
		{
			name: "unparseable dates",
			values: url.Values{
				"startDate": {"03/10/2026"},
				"endDate":   {"not-a-date"},
			},
		},
		{
			name: "unknown room category",
			values: url.Values{
				"room_pricing_category": {"Presidential Moonbase"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := DecodeSelection(tt.values)
			assert.Equal(t, 1, sel.Rooms)
			assert.Equal(t, 1, sel.Adults)
			assert.Equal(t, 0, sel.Children)
			assert.Equal(t, DefaultRoomCategory, sel.RoomCategory)
			assert.True(t, sel.CheckOut.After(sel.CheckIn))
		})
	}
}

func TestDecodeSelection_CheckOutBeforeCheckIn(t *testing.T) {
	sel := DecodeSelection(url.Values{
		"startDate": {"2026-03-10"},
		"endDate":   {"2026-03-08"},
	})

	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), sel.CheckIn)
	assert.Equal(t, time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC), sel.CheckOut)
}

func TestDecodeSelection_TwoAdultsForceSeparateCaregiverRoom(t *testing.T) {
	sel := DecodeSelection(url.Values{
		"adults":                    {"2"},
		"caregiver_required":        {"true"},
		"caregiver_stay_with_guest": {"true"},
		"caregiver_meal":            {"restaurant"},
	})

	assert.False(t, sel.CaregiverStaysWithGuest())
	assert.Equal(t, models.CaregiverSeparateRoom, sel.Caregiver.Kind)
	assert.Equal(t, models.MealRestaurant, sel.Caregiver.Meal)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		sel  models.BookingSelection
	}{
		{
			name: "plain stay",
			sel: models.BookingSelection{
				CheckIn:      time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
				CheckOut:     time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC),
				Rooms:        1,
				Adults:       1,
				Children:     0,
				RoomCategory: "Standard",
				Caregiver:    models.CaregiverPlan{Kind: models.CaregiverNone},
				Step:         1,
			},
		},
		{
			name: "caregiver sharing the guest room",
			sel: models.BookingSelection{
				CheckIn:      time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
				CheckOut:     time.Date(2026, time.June, 5, 0, 0, 0, 0, time.UTC),
				Rooms:        1,
				Adults:       1,
				Children:     1,
				RoomCategory: "Deluxe",
				Caregiver: models.CaregiverPlan{
					Kind: models.CaregiverSharedRoom,
					Meal: models.MealSimple,
				},
				Step: 2,
			},
		},
		{
			name: "caregiver in a separate room with transfer",
			sel: models.BookingSelection{
				CheckIn:      time.Date(2026, time.December, 20, 0, 0, 0, 0, time.UTC),
				CheckOut:     time.Date(2027, time.January, 3, 0, 0, 0, 0, time.UTC),
				Rooms:        2,
				Adults:       2,
				Children:     2,
				RoomID:       "GV-02",
				RoomCategory: "Garden Villa",
				Caregiver: models.CaregiverPlan{
					Kind:         models.CaregiverSeparateRoom,
					Meal:         models.MealRestaurant,
					RoomCategory: "Standard",
				},
				TransferRequested: true,
				Step:              3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded := DecodeSelection(EncodeSelection(tt.sel))
			require.Equal(t, tt.sel, decoded)
		})
	}
}

func TestEncodeSelection_Format(t *testing.T) {
	sel := models.BookingSelection{
		CheckIn:      time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:     time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC),
		Rooms:        1,
		Adults:       1,
		RoomCategory: "Standard",
		Caregiver:    models.CaregiverPlan{Kind: models.CaregiverNone},
		Step:         1,
	}

	values := EncodeSelection(sel)
	assert.Equal(t, "2026-03-10", values.Get("startDate"))
	assert.Equal(t, "2026-03-18", values.Get("endDate"))
	assert.Equal(t, "1", values.Get("rooms"))
	assert.Equal(t, "1", values.Get("adults"))
	assert.Equal(t, "0", values.Get("children"))
	assert.Equal(t, "false", values.Get("caregiver_required"))
	assert.Empty(t, values.Get("caregiver_meal"))
}
