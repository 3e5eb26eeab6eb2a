package bookingapi

// RoomRecord is one entry of the GET /room-types feed.
type RoomRecord struct {
	Code     string `json:"code"`
	Category string `json:"category"`

	PricePerNightSingle      float64 `json:"price_per_night_single"`
	PricePerNightDouble      float64 `json:"price_per_night_double"`
	PricePerNightSingleUpto7 float64 `json:"price_per_night_single_upto_7_nights"`
	PricePerNightDoubleUpto7 float64 `json:"price_per_night_double_upto_7_nights"`

	MaxGuests int `json:"max_guests,omitempty"`
}

// Occupancy is the nested occupancy block of the estimate request.
type Occupancy struct {
	Adults            int   `json:"adults"`
	Children          int   `json:"children"`
	Teens13to18       int   `json:"teens_13_18"`
	ChildrenAges      []int `json:"children_ages,omitempty"`
	CaregiverRequired bool  `json:"caregiver_required"`
}

// EstimateRequest is the POST /bookings/estimate body.
type EstimateRequest struct {
	RoomPricingCategory string    `json:"room_pricing_category"`
	CheckInDate         string    `json:"check_in_date"`
	CheckOutDate        string    `json:"check_out_date"`
	Occupancy           Occupancy `json:"occupancy"`

	CaregiverRequired            bool   `json:"caregiver_required"`
	CaregiverStayWithGuest       bool   `json:"caregiver_stay_with_guest"`
	CaregiverMeal                string `json:"caregiver_meal,omitempty"`
	CaregiverRoomPricingCategory string `json:"caregiver_room_pricing_category,omitempty"`

	NumberOfRooms       int `json:"number_of_rooms"`
	AdultsTotal         int `json:"adults_total"`
	ChildrenTotalUnder4 int `json:"children_total_under_4"`
	ChildrenTotal5to12  int `json:"children_total_5to12"`
	Teens13to18         int `json:"teens_13to18"`
}

// AmountDetail carries an amount plus the option it was priced for.
type AmountDetail struct {
	Amount   float64 `json:"amount"`
	RoomType string  `json:"room_type,omitempty"`
	MealType string  `json:"meal_type,omitempty"`
}

// EstimateResponse mirrors the estimate endpoint's breakdown shape.
type EstimateResponse struct {
	PerNightCharges     float64 `json:"per_night_charges"`
	StructuredBreakdown struct {
		RoomTotal          AmountDetail  `json:"room_total"`
		CaregiverRoomTotal *AmountDetail `json:"caregiver_room_total,omitempty"`
		CaregiverMeal      *AmountDetail `json:"caregiver_meal,omitempty"`
	} `json:"structured_breakdown"`
	PriceBreakdown struct {
		Total float64 `json:"total"`
	} `json:"price_breakdown"`
	DepositRequired float64 `json:"deposit_required"`
}

// OccupancyDetails uses the booking-search record's server-side field names.
type OccupancyDetails struct {
	Adults         int    `json:"adults"`
	ChildrenUnder4 int    `json:"children_total_under_4"`
	Children5to12  int    `json:"children_total_5to12"`
	RoomCode       string `json:"ids_room_code"`
}

// BookingRecord is a raw booking as returned by GET /bookings/search.
type BookingRecord struct {
	ReferenceCode string `json:"reference_code"`
	GuestName     string `json:"guest_name"`
	Email         string `json:"email,omitempty"`
	Status        string `json:"status,omitempty"`

	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`

	TotalAmount      float64           `json:"total_amount"`
	DepositReceived  float64           `json:"deposit_received"`
	EstimateResponse *EstimateResponse `json:"estimate_response,omitempty"`

	OccupancyDetails OccupancyDetails `json:"occupancy_details"`
}

// GuestDetail is one adult guest in the payment-initiation payload.
type GuestDetail struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PaymentInitRequest is the POST /payments/initiate body: the full booking
// plus the latest confirmed estimate.
type PaymentInitRequest struct {
	ReferenceCode string `json:"reference_code"`

	Guests         []GuestDetail `json:"guests"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Country        string        `json:"country"`
	SpecialRequest string        `json:"special_request,omitempty"`

	RoomPricingCategory string `json:"room_pricing_category"`
	CheckInDate         string `json:"check_in_date"`
	CheckOutDate        string `json:"check_out_date"`
	NumberOfRooms       int    `json:"number_of_rooms"`
	AdultsTotal         int    `json:"adults_total"`
	ChildrenTotal       int    `json:"children_total"`

	CaregiverRequired            bool   `json:"caregiver_required"`
	CaregiverStayWithGuest       bool   `json:"caregiver_stay_with_guest"`
	CaregiverMeal                string `json:"caregiver_meal,omitempty"`
	CaregiverRoomPricingCategory string `json:"caregiver_room_pricing_category,omitempty"`
	TransferRequested            bool   `json:"transfer_requested"`

	Estimate *EstimateResponse `json:"estimate"`

	ReturnURL string `json:"return_url"`
}

// PaymentInitResponse carries the hosted-checkout redirect: the gateway URL
// plus one form field per entry in PaymentOptions.Fields.
type PaymentInitResponse struct {
	CheckoutURL    string `json:"checkout_url"`
	PaymentOptions struct {
		Fields map[string]interface{} `json:"fields"`
	} `json:"payment_options"`
}
