package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"resort-frontend/models"
	"resort-frontend/services/bookingapi"
)

// BuildEstimateRequest maps a selection onto the estimate endpoint's wire
// shape. The booking page collects a single child count without ages, so it
// is reported in the 5-12 bucket; the under-4 and teen buckets stay zero.
func BuildEstimateRequest(sel models.BookingSelection) bookingapi.EstimateRequest {
	caregiverRoom := ""
	if sel.Caregiver.Kind == models.CaregiverSeparateRoom {
		caregiverRoom = sel.Caregiver.RoomCategory
		if caregiverRoom == "" {
			caregiverRoom = sel.RoomCategory
		}
	}

	return bookingapi.EstimateRequest{
		RoomPricingCategory: sel.RoomCategory,
		CheckInDate:         sel.CheckIn.Format(dateLayout),
		CheckOutDate:        sel.CheckOut.Format(dateLayout),
		Occupancy: bookingapi.Occupancy{
			Adults:            sel.Adults,
			Children:          sel.Children,
			CaregiverRequired: sel.CaregiverRequired(),
		},
		CaregiverRequired:            sel.CaregiverRequired(),
		CaregiverStayWithGuest:       sel.CaregiverStaysWithGuest(),
		CaregiverMeal:                string(sel.Caregiver.Meal),
		CaregiverRoomPricingCategory: caregiverRoom,
		NumberOfRooms:                sel.Rooms,
		AdultsTotal:                  sel.Adults,
		ChildrenTotal5to12:           sel.Children,
	}
}

// NormalizeEstimate flattens the API breakdown into the display model.
func NormalizeEstimate(resp *bookingapi.EstimateResponse) *models.PriceEstimate {
	est := &models.PriceEstimate{
		PerNightCharge:  resp.PerNightCharges,
		RoomTotal:       resp.StructuredBreakdown.RoomTotal.Amount,
		Total:           resp.PriceBreakdown.Total,
		DepositRequired: resp.DepositRequired,
	}
	if cr := resp.StructuredBreakdown.CaregiverRoomTotal; cr != nil {
		amount := cr.Amount
		est.CaregiverRoomTotal = &amount
		est.CaregiverRoomType = cr.RoomType
	}
	if cm := resp.StructuredBreakdown.CaregiverMeal; cm != nil {
		amount := cm.Amount
		est.CaregiverMealTotal = &amount
		est.CaregiverMealType = cm.MealType
	}
	return est
}

type estimateSession struct {
	issued    uint64
	committed uint64
	lastGood  *models.PriceEstimate
}

// EstimateService fetches authoritative estimates. Rapid input changes can
// race their responses, so every request gets a per-session sequence number
// and a response may only become the displayed estimate if no newer request
// was issued meanwhile (last request wins). The newest committed estimate is
// retained so a failed refresh can keep showing the last known good price.
type EstimateService struct {
	api *bookingapi.Client
	log *zap.Logger

	mu       sync.Mutex
	sessions map[string]*estimateSession
}

func NewEstimateService(api *bookingapi.Client, logger *zap.Logger) *EstimateService {
	return &EstimateService{
		api:      api,
		log:      logger,
		sessions: make(map[string]*estimateSession),
	}
}

func (s *EstimateService) session(id string) *estimateSession {
	sess, ok := s.sessions[id]
	if !ok {
		sess = &estimateSession{}
		s.sessions[id] = sess
	}
	return sess
}

func (s *EstimateService) begin(id string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(id)
	sess.issued++
	return sess.issued
}

// commit stores the estimate unless a newer request already committed.
func (s *EstimateService) commit(id string, seq uint64, est *models.PriceEstimate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess := s.session(id)
	if seq < sess.committed {
		return false
	}
	sess.committed = seq
	sess.lastGood = est
	return true
}

// LastKnown returns the newest committed estimate for a session, nil if none.
func (s *EstimateService) LastKnown(id string) *models.PriceEstimate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session(id).lastGood
}

// FetchEstimate requests a fresh estimate for the selection. On API failure
// it returns the last known good estimate together with the error so callers
// can keep the previous price on screen. A response superseded by a newer
// request is discarded in favor of the newer committed estimate.
func (s *EstimateService) FetchEstimate(ctx context.Context, sessionID string, sel models.BookingSelection) (*models.PriceEstimate, error) {
	seq := s.begin(sessionID)

	resp, err := s.api.Estimate(ctx, BuildEstimateRequest(sel))
	if err != nil {
		s.log.Error("estimate fetch failed",
			zap.String("session", sessionID),
			zap.String("category", sel.RoomCategory),
			zap.Error(err),
		)
		return s.LastKnown(sessionID), err
	}

	est := NormalizeEstimate(resp)
	if !s.commit(sessionID, seq, est) {
		s.log.Debug("stale estimate response discarded",
			zap.String("session", sessionID),
			zap.Uint64("seq", seq),
		)
		return s.LastKnown(sessionID), nil
	}
	return est, nil
}
