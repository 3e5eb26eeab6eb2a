package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"

	"resort-frontend/models"
	"resort-frontend/services/bookingapi"
)

var (
	// ErrEstimateUnavailable means the price could not be confirmed; a
	// reservation cannot proceed and the guest goes back a step.
	ErrEstimateUnavailable = errors.New("estimate unavailable")

	// ErrPaymentInitFailed means the gateway handshake failed after a
	// confirmed estimate; the guest stays on the page and may retry.
	ErrPaymentInitFailed = errors.New("payment initiation failed")
)

var validate = validator.New()

// GuestName is one adult guest on the reservation form.
type GuestName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ReservationForm is the guest-details step of the booking flow.
type ReservationForm struct {
	Guests         []GuestName `json:"guests"`
	Email          string      `json:"email"`
	Phone          string      `json:"phone"`
	Country        string      `json:"country"` // ISO 3166-1 alpha-2 region
	SpecialRequest string      `json:"special_request"`
	TermsAccepted  bool        `json:"terms_accepted"`
}

// GatewayRedirect carries everything needed to hand the browser to the
// payment gateway: the checkout URL plus one hidden form field per entry.
type GatewayRedirect struct {
	ReferenceCode string                 `json:"reference_code"`
	CheckoutURL   string                 `json:"checkout_url"`
	Fields        map[string]interface{} `json:"fields"`
}

var gatewayFormTmpl = template.Must(template.New("gateway").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body onload="document.getElementById('gateway-form').submit()">
<p>Redirecting you to the secure payment page&hellip;</p>
<form id="gateway-form" method="POST" action="{{.CheckoutURL}}">
{{- range $name, $value := .Fields}}
<input type="hidden" name="{{$name}}" value="{{$value}}">
{{- end}}
<noscript><button type="submit">Continue to payment</button></noscript>
</form>
</body>
</html>
`))

// ReservationService validates the guest-details form, re-confirms the price
// and starts the payment handshake.
type ReservationService struct {
	api       *bookingapi.Client
	log       *zap.Logger
	returnURL string
}

func NewReservationService(api *bookingapi.Client, logger *zap.Logger, returnURL string) *ReservationService {
	return &ReservationService{api: api, log: logger, returnURL: returnURL}
}

// Validate checks the reservation form and returns field-keyed messages.
// An empty map means the form may be submitted; nothing touches the network
// until then.
func (s *ReservationService) Validate(form ReservationForm, adults int) map[string]string {
	fieldErrors := map[string]string{}

	if len(form.Guests) < adults {
		fieldErrors["guests"] = "Please provide the name of every adult guest"
	}
	for i, guest := range form.Guests {
		if strings.TrimSpace(guest.FirstName) == "" {
			fieldErrors[fmt.Sprintf("guests[%d].first_name", i)] = "First name is required"
		}
		if strings.TrimSpace(guest.LastName) == "" {
			fieldErrors[fmt.Sprintf("guests[%d].last_name", i)] = "Last name is required"
		}
	}

	if err := validate.Var(form.Email, "required,email"); err != nil {
		fieldErrors["email"] = "Please enter a valid email address"
	}

	country := strings.TrimSpace(form.Country)
	if country == "" {
		fieldErrors["country"] = "Please select your country"
	}

	if strings.TrimSpace(form.Phone) == "" {
		fieldErrors["phone"] = "Please enter your phone number"
	} else if country != "" {
		num, err := phonenumbers.Parse(form.Phone, strings.ToUpper(country))
		if err != nil || !phonenumbers.IsValidNumber(num) {
			fieldErrors["phone"] = "Please enter a valid phone number"
		}
	}

	if !form.TermsAccepted {
		fieldErrors["terms_accepted"] = "Please accept the terms and conditions"
	}

	return fieldErrors
}

// Submit confirms the price one last time, assembles the payment-initiation
// payload and returns the gateway redirect. The caller must have validated
// the form first.
func (s *ReservationService) Submit(ctx context.Context, sel models.BookingSelection, form ReservationForm) (*GatewayRedirect, error) {
	estimate, err := s.api.Estimate(ctx, BuildEstimateRequest(sel))
	if err != nil {
		s.log.Error("reservation estimate failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrEstimateUnavailable, err)
	}

	reference := uuid.NewString()
	guests := make([]bookingapi.GuestDetail, 0, len(form.Guests))
	for _, g := range form.Guests {
		guests = append(guests, bookingapi.GuestDetail{
			FirstName: strings.TrimSpace(g.FirstName),
			LastName:  strings.TrimSpace(g.LastName),
		})
	}

	caregiverRoom := ""
	if sel.Caregiver.Kind == models.CaregiverSeparateRoom {
		caregiverRoom = sel.Caregiver.RoomCategory
		if caregiverRoom == "" {
			caregiverRoom = sel.RoomCategory
		}
	}

	payload := bookingapi.PaymentInitRequest{
		ReferenceCode:  reference,
		Guests:         guests,
		Email:          strings.TrimSpace(form.Email),
		Phone:          strings.TrimSpace(form.Phone),
		Country:        strings.ToUpper(strings.TrimSpace(form.Country)),
		SpecialRequest: strings.TrimSpace(form.SpecialRequest),

		RoomPricingCategory: sel.RoomCategory,
		CheckInDate:         sel.CheckIn.Format(dateLayout),
		CheckOutDate:        sel.CheckOut.Format(dateLayout),
		NumberOfRooms:       sel.Rooms,
		AdultsTotal:         sel.Adults,
		ChildrenTotal:       sel.Children,

		CaregiverRequired:            sel.CaregiverRequired(),
		CaregiverStayWithGuest:       sel.CaregiverStaysWithGuest(),
		CaregiverMeal:                string(sel.Caregiver.Meal),
		CaregiverRoomPricingCategory: caregiverRoom,
		TransferRequested:            sel.TransferRequested,

		Estimate:  estimate,
		ReturnURL: s.returnURL,
	}

	resp, err := s.api.InitiatePayment(ctx, payload)
	if err != nil {
		s.log.Error("payment initiation failed",
			zap.String("reference", reference),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrPaymentInitFailed, err)
	}

	return &GatewayRedirect{
		ReferenceCode: reference,
		CheckoutURL:   resp.CheckoutURL,
		Fields:        resp.PaymentOptions.Fields,
	}, nil
}

// RenderGatewayForm renders the hidden auto-submitting form that performs
// the full-page navigation to the payment gateway.
func RenderGatewayForm(redirect *GatewayRedirect) (string, error) {
	var buf bytes.Buffer
	if err := gatewayFormTmpl.Execute(&buf, redirect); err != nil {
		return "", fmt.Errorf("cannot render gateway form: %w", err)
	}
	return buf.String(), nil
}
