package models

import "time"

// CaregiverKind tags the caregiver arrangement for a stay.
type CaregiverKind string

const (
	CaregiverNone         CaregiverKind = "none"
	CaregiverSharedRoom   CaregiverKind = "shared_room"
	CaregiverSeparateRoom CaregiverKind = "separate_room"
)

// MealPlan is the caregiver meal option.
type MealPlan string

const (
	MealSimple     MealPlan = "simple"
	MealRestaurant MealPlan = "restaurant"
)

// CaregiverPlan is a tagged variant: no caregiver, caregiver sharing the
// guest room (meal only), or caregiver in a separate room (category + meal).
// RoomCategory is meaningful only for CaregiverSeparateRoom, Meal only when
// a caregiver is present at all.
type CaregiverPlan struct {
	Kind         CaregiverKind `json:"kind"`
	Meal         MealPlan      `json:"meal,omitempty"`
	RoomCategory string        `json:"room_category,omitempty"`
}

// BookingSelection is the working state of an in-progress booking. It lives
// in the page URL between steps and is never persisted server-side; each
// request re-derives it from query parameters.
type BookingSelection struct {
	CheckIn  time.Time `json:"check_in"`
	CheckOut time.Time `json:"check_out"`

	Rooms    int `json:"rooms"`
	Adults   int `json:"adults"`
	Children int `json:"children"`

	RoomID       string `json:"room_id,omitempty"`
	RoomCategory string `json:"room_category"`

	Caregiver         CaregiverPlan `json:"caregiver"`
	TransferRequested bool          `json:"transfer_requested"`

	Step int `json:"step"`
}

// Nights returns the stay length in calendar days.
func (s BookingSelection) Nights() int {
	return int(s.CheckOut.Sub(s.CheckIn).Hours() / 24)
}

// Normalize enforces the selection invariants in place:
//   - check-out strictly after check-in (re-defaulted to +3 days otherwise)
//   - two adults leave no space in the guest room, so a sharing caregiver is
//     moved to a separate room
//   - caregiver fields irrelevant to the plan kind are cleared
func (s *BookingSelection) Normalize() {
	if !s.CheckOut.After(s.CheckIn) {
		s.CheckOut = s.CheckIn.AddDate(0, 0, 3)
	}
	if s.Rooms < 1 {
		s.Rooms = 1
	}
	if s.Adults < 1 {
		s.Adults = 1
	}
	if s.Children < 0 {
		s.Children = 0
	}

	switch s.Caregiver.Kind {
	case CaregiverSharedRoom:
		s.Caregiver.RoomCategory = ""
		if s.Adults == 2 {
			s.Caregiver.Kind = CaregiverSeparateRoom
		}
	case CaregiverSeparateRoom:
		// keep as-is
	default:
		s.Caregiver = CaregiverPlan{Kind: CaregiverNone}
	}

	if s.Caregiver.Kind != CaregiverNone && s.Caregiver.Meal == "" {
		s.Caregiver.Meal = MealSimple
	}
}

// CaregiverRequired reports whether any caregiver arrangement is selected.
func (s BookingSelection) CaregiverRequired() bool {
	return s.Caregiver.Kind != CaregiverNone
}

// CaregiverStaysWithGuest reports whether the caregiver shares the guest room.
func (s BookingSelection) CaregiverStaysWithGuest() bool {
	return s.Caregiver.Kind == CaregiverSharedRoom
}
