package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resort-frontend/services"
	"resort-frontend/utils"
)

type ReservationController struct {
	Reservations *services.ReservationService
}

func NewReservationController(reservations *services.ReservationService) *ReservationController {
	return &ReservationController{Reservations: reservations}
}

// Create validates the guest-details form, re-confirms the price and starts
// the payment handshake. Browsers that accept HTML get the auto-submitting
// gateway form back (a full-page navigation to the gateway); API callers get
// the checkout URL and field map as JSON.
func (ctrl *ReservationController) Create(c *gin.Context) {
	sel := services.DecodeSelection(c.Request.URL.Query())

	var form services.ReservationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	if fieldErrors := ctrl.Reservations.Validate(form, sel.Adults); len(fieldErrors) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"errors":  fieldErrors,
		})
		return
	}

	redirect, err := ctrl.Reservations.Submit(c.Request.Context(), sel, form)
	if err != nil {
		if errors.Is(err, services.ErrEstimateUnavailable) {
			// no confirmed price, no reservation: send the guest back a step
			c.JSON(http.StatusConflict, gin.H{
				"success":       false,
				"error":         "We could not confirm your price. Please review your selection and try again.",
				"redirect_back": "/booking/rooms?" + services.EncodeSelection(sel).Encode(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"success":   false,
			"error":     "Payment could not be initiated. Please try again.",
			"retryable": true,
		})
		return
	}

	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		page, err := services.RenderGatewayForm(redirect)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Payment could not be initiated. Please try again.")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
		return
	}

	utils.JSONSuccess(c, http.StatusOK, redirect)
}
