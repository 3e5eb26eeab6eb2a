package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resort-frontend/services"
	"resort-frontend/services/bookingapi"
	"resort-frontend/utils"
)

type ConfirmationController struct {
	Confirmations *services.ConfirmationService
}

func NewConfirmationController(confirmations *services.ConfirmationService) *ConfirmationController {
	return &ConfirmationController{Confirmations: confirmations}
}

// Get resolves the booking behind a payment-gateway return URL
// (?txnid=...&status=...).
func (ctrl *ConfirmationController) Get(c *gin.Context) {
	txnid := c.Query("txnid")
	status := c.Query("status")

	conf, err := ctrl.Confirmations.Resolve(c.Request.Context(), txnid, status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotSuccessful):
			utils.JSONError(c, http.StatusPaymentRequired, "Payment was not successful. Please try booking again.")
		case errors.Is(err, services.ErrMissingTransaction):
			utils.JSONError(c, http.StatusBadRequest, "Missing transaction reference")
		case errors.Is(err, bookingapi.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "We could not find your booking")
		default:
			utils.JSONError(c, http.StatusBadGateway, "Something went wrong! Please try again!")
		}
		return
	}

	utils.JSONSuccess(c, http.StatusOK, conf)
}
