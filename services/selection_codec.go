package services

import (
	"net/url"
	"strconv"
	"time"

	"resort-frontend/models"
)

// Query parameter names shared by all three booking pages. The URL is the
// only carrier of booking state between pages, so these names are part of
// the front-end contract.
const (
	paramStartDate         = "startDate"
	paramEndDate           = "endDate"
	paramRooms             = "rooms"
	paramAdults            = "adults"
	paramChildren          = "children"
	paramRoomID            = "roomID"
	paramRoomCategory      = "room_pricing_category"
	paramCaregiverRequired = "caregiver_required"
	paramCaregiverStay     = "caregiver_stay_with_guest"
	paramCaregiverRoom     = "caregiver_room_pricing_category"
	paramCaregiverMeal     = "caregiver_meal"
	paramTransfer          = "transfer"
	paramStep              = "step"
)

const dateLayout = "2006-01-02"

// DefaultRoomCategory is used whenever the URL carries no valid category.
const DefaultRoomCategory = "Standard"

// validCategories mirrors the seeded display catalog; a selection may only
// point at a category that exists there.
var validCategories = map[string]bool{
	"Standard":     true,
	"Superior":     true,
	"Deluxe":       true,
	"Garden Villa": true,
}

// injectable for tests
var timeNow = time.Now

func today() time.Time {
	now := timeNow()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func parseDateOr(values url.Values, key string, fallback time.Time) time.Time {
	raw := values.Get(key)
	if raw == "" {
		return fallback
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fallback
	}
	return t
}

func parseCountOr(values url.Values, key string, min, fallback int) int {
	raw := values.Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min {
		return fallback
	}
	return n
}

func parseBool(values url.Values, key string) bool {
	switch values.Get(key) {
	case "true", "1":
		return true
	}
	return false
}

// DecodeSelection rebuilds a BookingSelection from URL query parameters.
// It never fails: every missing or malformed field falls back to its default
// (check-in today, check-out +3 days, 1 room, 1 adult, 0 children), and the
// result is always normalized.
func DecodeSelection(values url.Values) models.BookingSelection {
	checkIn := parseDateOr(values, paramStartDate, today())
	checkOut := parseDateOr(values, paramEndDate, checkIn.AddDate(0, 0, 3))

	sel := models.BookingSelection{
		CheckIn:           checkIn,
		CheckOut:          checkOut,
		Rooms:             parseCountOr(values, paramRooms, 1, 1),
		Adults:            parseCountOr(values, paramAdults, 1, 1),
		Children:          parseCountOr(values, paramChildren, 0, 0),
		RoomID:            values.Get(paramRoomID),
		RoomCategory:      values.Get(paramRoomCategory),
		TransferRequested: parseBool(values, paramTransfer),
		Step:              parseCountOr(values, paramStep, 1, 1),
	}

	if !validCategories[sel.RoomCategory] {
		sel.RoomCategory = DefaultRoomCategory
	}

	if parseBool(values, paramCaregiverRequired) {
		plan := models.CaregiverPlan{Kind: models.CaregiverSeparateRoom}
		if parseBool(values, paramCaregiverStay) {
			plan.Kind = models.CaregiverSharedRoom
		}
		switch models.MealPlan(values.Get(paramCaregiverMeal)) {
		case models.MealRestaurant:
			plan.Meal = models.MealRestaurant
		default:
			plan.Meal = models.MealSimple
		}
		if plan.Kind == models.CaregiverSeparateRoom {
			if cat := values.Get(paramCaregiverRoom); validCategories[cat] {
				plan.RoomCategory = cat
			}
		}
		sel.Caregiver = plan
	} else {
		sel.Caregiver = models.CaregiverPlan{Kind: models.CaregiverNone}
	}

	sel.Normalize()
	return sel
}

// EncodeSelection serializes a selection back into query parameters with
// ISO-8601 dates and decimal counts, so DecodeSelection(EncodeSelection(s))
// reproduces any normalized selection exactly.
func EncodeSelection(sel models.BookingSelection) url.Values {
	values := url.Values{}
	values.Set(paramStartDate, sel.CheckIn.Format(dateLayout))
	values.Set(paramEndDate, sel.CheckOut.Format(dateLayout))
	values.Set(paramRooms, strconv.Itoa(sel.Rooms))
	values.Set(paramAdults, strconv.Itoa(sel.Adults))
	values.Set(paramChildren, strconv.Itoa(sel.Children))
	if sel.RoomID != "" {
		values.Set(paramRoomID, sel.RoomID)
	}
	values.Set(paramRoomCategory, sel.RoomCategory)
	values.Set(paramCaregiverRequired, strconv.FormatBool(sel.CaregiverRequired()))
	if sel.CaregiverRequired() {
		values.Set(paramCaregiverStay, strconv.FormatBool(sel.CaregiverStaysWithGuest()))
		values.Set(paramCaregiverMeal, string(sel.Caregiver.Meal))
		if sel.Caregiver.Kind == models.CaregiverSeparateRoom && sel.Caregiver.RoomCategory != "" {
			values.Set(paramCaregiverRoom, sel.Caregiver.RoomCategory)
		}
	}
	if sel.TransferRequested {
		values.Set(paramTransfer, "true")
	}
	values.Set(paramStep, strconv.Itoa(sel.Step))
	return values
}
