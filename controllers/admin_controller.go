package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"resort-frontend/services/bookingapi"
	"resort-frontend/utils"
)

type loginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminController is a thin credential forwarder: the booking API owns admin
// accounts, nothing is stored here.
type AdminController struct {
	API *bookingapi.Client
	Log *zap.Logger
}

func NewAdminController(api *bookingapi.Client, logger *zap.Logger) *AdminController {
	return &AdminController{API: api, Log: logger}
}

// Login forwards credentials and maps failures onto user-facing messages:
// explicit 401 means the account is not an admin, a server-provided detail
// takes precedence otherwise, and anything else gets a friendly fallback —
// never a raw error.
func (ctrl *AdminController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "username and password required")
		return
	}

	session, err := ctrl.API.AdminLogin(c.Request.Context(), strings.TrimSpace(payload.Username), payload.Password)
	if err != nil {
		var apiErr *bookingapi.APIError
		if errors.As(err, &apiErr) {
			if apiErr.Status == http.StatusUnauthorized {
				utils.JSONError(c, http.StatusUnauthorized, "You are not an authorised admin")
				return
			}
			if detail := apiErr.Detail(); detail != "" {
				utils.JSONError(c, apiErr.Status, detail)
				return
			}
			utils.JSONError(c, apiErr.Status, "Login failed. Please try again.")
			return
		}
		ctrl.Log.Error("admin login forward failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Login failed. Please try again.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, session)
}
