package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-frontend/models"
	"resort-frontend/services"
	"resort-frontend/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// estimateOverlay carries caregiver/meal toggles the page has not committed
// to the URL yet; they are applied on top of the decoded selection before
// the estimate request goes out.
type estimateOverlay struct {
	CaregiverRequired      *bool   `json:"caregiver_required"`
	CaregiverStayWithGuest *bool   `json:"caregiver_stay_with_guest"`
	CaregiverMeal          *string `json:"caregiver_meal"`
	CaregiverRoomCategory  *string `json:"caregiver_room_pricing_category"`
	TransferRequested      *bool   `json:"transfer_requested"`
}

func applyOverlay(sel *models.BookingSelection, overlay estimateOverlay) {
	if overlay.CaregiverRequired != nil {
		if *overlay.CaregiverRequired {
			if sel.Caregiver.Kind == models.CaregiverNone {
				sel.Caregiver = models.CaregiverPlan{Kind: models.CaregiverSharedRoom}
			}
		} else {
			sel.Caregiver = models.CaregiverPlan{Kind: models.CaregiverNone}
		}
	}
	if overlay.CaregiverStayWithGuest != nil && sel.Caregiver.Kind != models.CaregiverNone {
		if *overlay.CaregiverStayWithGuest {
			sel.Caregiver.Kind = models.CaregiverSharedRoom
		} else {
			sel.Caregiver.Kind = models.CaregiverSeparateRoom
		}
	}
	if overlay.CaregiverMeal != nil && sel.Caregiver.Kind != models.CaregiverNone {
		sel.Caregiver.Meal = models.MealPlan(*overlay.CaregiverMeal)
	}
	if overlay.CaregiverRoomCategory != nil && sel.Caregiver.Kind == models.CaregiverSeparateRoom {
		sel.Caregiver.RoomCategory = *overlay.CaregiverRoomCategory
	}
	if overlay.TransferRequested != nil {
		sel.TransferRequested = *overlay.TransferRequested
	}
	sel.Normalize()
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	Estimates *services.EstimateService
	Catalog   *services.CatalogService
	Pricing   services.PricingService
}

func NewBookingController(estimates *services.EstimateService, catalog *services.CatalogService) *BookingController {
	return &BookingController{Estimates: estimates, Catalog: catalog}
}

// sessionID identifies the browsing session for estimate ordering; pages
// pass ?session=, anything else degrades to the client address.
func sessionID(c *gin.Context) string {
	if id := c.Query("session"); id != "" {
		return id
	}
	return c.ClientIP()
}

// GetSelection decodes the booking state from the URL, normalizes it and
// echoes the canonical query string the page should replace its history
// entry with. The "starting from" price is the client-side approximation
// only — the estimate endpoint owns the real total.
func (ctrl *BookingController) GetSelection(c *gin.Context) {
	sel := services.DecodeSelection(c.Request.URL.Query())

	payload := gin.H{
		"selection": sel,
		"query":     services.EncodeSelection(sel).Encode(),
		"nights":    sel.Nights(),
		"sold_out":  ctrl.Pricing.IsSoldOut(sel.RoomCategory, sel.CheckIn),
	}

	entry, err := ctrl.Catalog.Entry(c.Request.Context(), sel.RoomCategory, services.CatalogOptions{
		StartDate: sel.CheckIn,
		Nights:    sel.Nights(),
		Adults:    sel.Adults,
	})
	if err == nil {
		payload["starting_from"] = entry.StartingFrom
	}

	utils.JSONSuccess(c, http.StatusOK, payload)
}

// CreateEstimate requests a fresh server estimate for the current selection
// plus any transient toggles in the body. On failure the last known good
// estimate for the session is returned alongside the error so the page can
// keep showing the previous price.
func (ctrl *BookingController) CreateEstimate(c *gin.Context) {
	sel := services.DecodeSelection(c.Request.URL.Query())

	var overlay estimateOverlay
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&overlay); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid payload")
			return
		}
	}
	applyOverlay(&sel, overlay)

	estimate, err := ctrl.Estimates.FetchEstimate(c.Request.Context(), sessionID(c), sel)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"success":             false,
			"error":               "Something went wrong! Please try again!",
			"last_known_estimate": estimate,
		})
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"estimate":  estimate,
		"selection": sel,
		"query":     services.EncodeSelection(sel).Encode(),
	})
}
