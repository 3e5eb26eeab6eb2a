package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"resort-frontend/config"
	"resort-frontend/controllers"
	"resort-frontend/routes"
	"resort-frontend/services"
	"resort-frontend/services/bookingapi"
	"resort-frontend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	config.LoadConfig()
	utils.InitializeLogger()
	defer utils.Logger.Sync()

	if config.AppConfig.BookingAPIURL == "" {
		log.Fatal("❌ ERROR: BOOKING_API_URL is not set. Cannot reach the booking API.")
	}

	// Connect database (room display metadata)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and display metadata seeded.")

	// Redis is optional; the catalog just skips caching without it.
	if err := config.ConnectRedis(); err != nil {
		log.Printf("⚠️  Redis unavailable, room-catalog caching disabled: %v", err)
	} else if config.Cache != nil {
		log.Println("✅ Redis connected, room-catalog caching enabled.")
	}

	// Booking API client
	apiClient := bookingapi.NewClient(
		config.AppConfig.BookingAPIURL,
		config.BookingAPITimeoutDuration(),
		utils.GetLogger(),
	)

	// Initialize services
	catalogService := services.NewCatalogService(
		config.DB,
		apiClient,
		config.Cache,
		config.RoomCacheTTLDuration(),
		utils.GetLogger(),
	)
	estimateService := services.NewEstimateService(apiClient, utils.GetLogger())
	reservationService := services.NewReservationService(apiClient, utils.GetLogger(), config.AppConfig.PaymentReturnURL)
	confirmationService := services.NewConfirmationService(apiClient, utils.GetLogger())

	// Initialize controllers
	bookingController := controllers.NewBookingController(estimateService, catalogService)
	reservationController := controllers.NewReservationController(reservationService)
	confirmationController := controllers.NewConfirmationController(confirmationService)
	catalogController := controllers.NewCatalogController(catalogService)
	inquiryController := controllers.NewInquiryController(apiClient, utils.GetLogger(), config.AppConfig.InquiryEmail)
	adminController := controllers.NewAdminController(apiClient, utils.GetLogger())

	// Build router
	router := routes.SetupRouter(
		bookingController,
		reservationController,
		confirmationController,
		catalogController,
		inquiryController,
		adminController,
	)

	addr := ":" + config.AppConfig.AppPort

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
