package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"resort-frontend/models"
	"resort-frontend/services/bookingapi"
)

var (
	// ErrPaymentNotSuccessful means the gateway reported a non-success
	// status on return; there is nothing to look up.
	ErrPaymentNotSuccessful = errors.New("payment was not successful")

	// ErrMissingTransaction means the return URL carried no transaction id.
	ErrMissingTransaction = errors.New("missing transaction id")
)

// MapConfirmation turns a raw booking-search record into the display model.
// The total falls back from total_amount through the embedded estimate to
// zero; children is the sum of the two child age buckets.
func MapConfirmation(record *bookingapi.BookingRecord) models.BookingConfirmation {
	total := record.TotalAmount
	if total == 0 && record.EstimateResponse != nil {
		total = record.EstimateResponse.PriceBreakdown.Total
	}

	conf := models.BookingConfirmation{
		ReferenceCode:   record.ReferenceCode,
		GuestName:       record.GuestName,
		Email:           record.Email,
		CheckInDate:     record.CheckInDate,
		CheckOutDate:    record.CheckOutDate,
		Nights:          nightsBetween(record.CheckInDate, record.CheckOutDate),
		Adults:          record.OccupancyDetails.Adults,
		Children:        record.OccupancyDetails.ChildrenUnder4 + record.OccupancyDetails.Children5to12,
		RoomCode:        record.OccupancyDetails.RoomCode,
		Total:           total,
		DepositReceived: record.DepositReceived,
		BalancePayable:  total - record.DepositReceived,
		Status:          record.Status,
	}
	return conf
}

func nightsBetween(checkIn, checkOut string) int {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0
	}
	nights := int(out.Sub(in).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// ConfirmationService resolves a completed payment back into a booking.
type ConfirmationService struct {
	api *bookingapi.Client
	log *zap.Logger
}

func NewConfirmationService(api *bookingapi.Client, logger *zap.Logger) *ConfirmationService {
	return &ConfirmationService{api: api, log: logger}
}

// Resolve looks up the booking behind a gateway return. A non-success status
// short-circuits without any fetch. The room code is resolved to its
// human-readable category via the room-types feed; if that secondary lookup
// fails the confirmation still renders with the raw code as the label.
func (s *ConfirmationService) Resolve(ctx context.Context, txnid, status string) (*models.BookingConfirmation, error) {
	if status != "success" {
		return nil, ErrPaymentNotSuccessful
	}
	if txnid == "" {
		return nil, ErrMissingTransaction
	}

	record, err := s.api.SearchBooking(ctx, txnid)
	if err != nil {
		return nil, err
	}

	conf := MapConfirmation(record)
	if conf.RoomCode != "" {
		conf.RoomCategory = s.resolveRoomCategory(ctx, conf.RoomCode)
	}
	return &conf, nil
}

// resolveRoomCategory is best-effort: a failure here must never take the
// confirmation page down, so it degrades to the raw room code.
func (s *ConfirmationService) resolveRoomCategory(ctx context.Context, roomCode string) string {
	rooms, err := s.api.FetchRoomTypes(ctx)
	if err != nil {
		s.log.Warn("room category resolution failed, falling back to raw code",
			zap.String("room_code", roomCode),
			zap.Error(err),
		)
		return roomCode
	}
	for _, room := range rooms {
		if room.Code == roomCode {
			return room.Category
		}
	}
	s.log.Warn("room code not present in room-types feed",
		zap.String("room_code", roomCode),
	)
	return roomCode
}
