package models

// PriceEstimate is the server-confirmed cost breakdown for a selection, in a
// display-ready shape. The external estimate endpoint is the only source of
// these numbers; the client-side nightly-rate lookup is never authoritative.
type PriceEstimate struct {
	PerNightCharge     float64  `json:"per_night_charge"`
	RoomTotal          float64  `json:"room_total"`
	CaregiverRoomTotal *float64 `json:"caregiver_room_total,omitempty"`
	CaregiverRoomType  string   `json:"caregiver_room_type,omitempty"`
	CaregiverMealTotal *float64 `json:"caregiver_meal_total,omitempty"`
	CaregiverMealType  string   `json:"caregiver_meal_type,omitempty"`
	Total              float64  `json:"total"`
	DepositRequired    float64  `json:"deposit_required"`
}
