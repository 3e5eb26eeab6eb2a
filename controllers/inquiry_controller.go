package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"resort-frontend/services/bookingapi"
	"resort-frontend/utils"
)

type childrenInquiryPayload struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone"`
	ChildrenCount int    `json:"children_count"`
	TravelDates   string `json:"travel_dates"`
	Message       string `json:"message"`
}

// InquiryController forwards the "travelling with children" inquiry form to
// the reservations inbox through the booking API's email endpoint.
type InquiryController struct {
	API     *bookingapi.Client
	Log     *zap.Logger
	ToEmail string
}

func NewInquiryController(api *bookingapi.Client, logger *zap.Logger, toEmail string) *InquiryController {
	return &InquiryController{API: api, Log: logger, ToEmail: toEmail}
}

func (ctrl *InquiryController) CreateChildrenInquiry(c *gin.Context) {
	var payload childrenInquiryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	reference := strings.ToUpper(uuid.NewString()[:8])
	subject := fmt.Sprintf("Travelling with children inquiry [%s]", reference)

	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\n", payload.Name)
	fmt.Fprintf(&body, "Email: %s\n", payload.Email)
	if payload.Phone != "" {
		fmt.Fprintf(&body, "Phone: %s\n", payload.Phone)
	}
	if payload.ChildrenCount > 0 {
		fmt.Fprintf(&body, "Children: %d\n", payload.ChildrenCount)
	}
	if payload.TravelDates != "" {
		fmt.Fprintf(&body, "Travel dates: %s\n", payload.TravelDates)
	}
	if payload.Message != "" {
		fmt.Fprintf(&body, "\n%s\n", payload.Message)
	}

	if err := ctrl.API.SendEmail(c.Request.Context(), ctrl.ToEmail, subject, body.String()); err != nil {
		ctrl.Log.Error("children inquiry email failed",
			zap.String("reference", reference),
			zap.Error(err),
		)
		utils.JSONError(c, http.StatusBadGateway, "Something went wrong! Please try again!")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"reference": reference})
}
