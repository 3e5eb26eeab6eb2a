package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"resort-frontend/config"
	"resort-frontend/controllers"
	"resort-frontend/middleware"
)

func SetupRouter(
	bc *controllers.BookingController,
	rc *controllers.ReservationController,
	cc *controllers.ConfirmationController,
	catc *controllers.CatalogController,
	ic *controllers.InquiryController,
	ac *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := config.CorsOriginList()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", catc.GetRooms)
			rooms.GET("/:category", catc.GetRoom)
		}

		booking := api.Group("/booking")
		{
			booking.GET("/selection", bc.GetSelection)
			booking.POST("/estimate", bc.CreateEstimate)
		}

		reservations := api.Group("/reservations")
		{
			reservations.POST("", rc.Create)
		}

		api.GET("/confirmation", cc.Get)

		inquiries := api.Group("/inquiries")
		{
			inquiries.POST("/children", ic.CreateChildrenInquiry)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", ac.Login)
		}
	}

	return r
}
