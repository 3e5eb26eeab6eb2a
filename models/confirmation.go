package models

// BookingConfirmation is the display model for a resolved booking, built from
// the booking-search record after a successful payment return.
type BookingConfirmation struct {
	ReferenceCode string `json:"reference_code"`
	GuestName     string `json:"guest_name"`
	Email         string `json:"email,omitempty"`

	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Nights       int    `json:"nights"`

	Adults   int `json:"adults"`
	Children int `json:"children"`

	RoomCode string `json:"room_code,omitempty"`
	// RoomCategory is resolved via the room-types feed; when that lookup
	// fails the raw RoomCode doubles as the display label.
	RoomCategory string `json:"room_category,omitempty"`

	Total           float64 `json:"total"`
	DepositReceived float64 `json:"deposit_received"`
	BalancePayable  float64 `json:"balance_payable"`

	Status string `json:"status,omitempty"`
}
