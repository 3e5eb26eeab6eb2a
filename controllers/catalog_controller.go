package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"resort-frontend/services"
	"resort-frontend/utils"
)

type CatalogController struct {
	Catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{Catalog: catalog}
}

func catalogOptions(c *gin.Context) services.CatalogOptions {
	opts := services.CatalogOptions{}
	if raw := c.Query("startDate"); raw != "" {
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			opts.StartDate = t
		}
	}
	if n, err := strconv.Atoi(c.Query("nights")); err == nil && n > 0 {
		opts.Nights = n
	}
	if n, err := strconv.Atoi(c.Query("adults")); err == nil && n > 0 {
		opts.Adults = n
	}
	return opts
}

// GetRooms lists every bookable category joined with its display metadata.
// startDate adds sold-out flags, nights/adults add the pre-estimate
// "starting from" nightly price.
func (ctrl *CatalogController) GetRooms(c *gin.Context) {
	entries, err := ctrl.Catalog.Catalog(c.Request.Context(), catalogOptions(c))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "Something went wrong! Please try again!")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}

// GetRoom returns a single category.
func (ctrl *CatalogController) GetRoom(c *gin.Context) {
	entry, err := ctrl.Catalog.Entry(c.Request.Context(), c.Param("category"), catalogOptions(c))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "Room category not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entry)
}
