package main

import (
	"fmt"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"appointment-booking-app/internal/booking"
	"appointment-booking-app/internal/config"
	"appointment-booking-app/internal/logger"
	"appointment-booking-app/internal/middleware"
	"appointment-booking-app/internal/routes"
)

func main() {
	// .env is optional; the environment alone is enough.
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	appLog := logger.New(cfg.LogLevel)
	if envErr != nil {
		appLog.WithError(envErr).Debug("No .env file loaded")
	}

	store := booking.NewStore()
	if cfg.SeedSampleAppointments {
		booking.Seed(store)
	}
	notifications := booking.NewNotifications(booking.SystemClock(), cfg.NotificationDuration, appLog.WithComponent("notifications"))
	defer notifications.Stop()
	ctrl := booking.NewController(store, notifications, appLog.WithComponent("booking"))

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(appLog))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.RequestIDHeader}
	router.Use(cors.New(corsConfig))

	routes.SetupRoutes(router, ctrl, notifications)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	appLog.WithField("port", cfg.Port).WithField("appointments", store.Len()).Info("Booking server starting")
	if err := router.Run(serverAddr); err != nil {
		appLog.WithError(err).Fatal("Failed to start server")
	}
}
