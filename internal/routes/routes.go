package routes

import (
	"appointment-booking-app/internal/booking"
	"appointment-booking-app/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, ctrl *booking.Controller, notifications *booking.Notifications) {
	appointmentHandler := handlers.NewAppointmentHandler(ctrl)
	formHandler := handlers.NewFormHandler(ctrl)
	menuHandler := handlers.NewMenuHandler(ctrl)
	sessionHandler := handlers.NewSessionHandler(ctrl, notifications)

	api := router.Group("/api/v1")
	{
		api.GET("/state", sessionHandler.GetState)
		api.GET("/options", sessionHandler.GetOptions)
		api.GET("/notification", sessionHandler.GetNotification)

		appointmentRoutes := api.Group("/appointments")
		{
			appointmentRoutes.GET("", appointmentHandler.GetAppointments)
			appointmentRoutes.POST("/:id/edit", appointmentHandler.EditAppointment)
			appointmentRoutes.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		formRoutes := api.Group("/form")
		{
			formRoutes.GET("", formHandler.GetForm)
			formRoutes.PATCH("", formHandler.SetField)
			formRoutes.POST("/submit", formHandler.Submit)
			formRoutes.POST("/cancel", formHandler.Cancel)
		}

		// Outside clicks arrive as /menu/close.
		menuRoutes := api.Group("/menu")
		{
			menuRoutes.GET("", menuHandler.GetMenu)
			menuRoutes.POST("/:id/toggle", menuHandler.ToggleMenu)
			menuRoutes.POST("/close", menuHandler.CloseMenus)
		}
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "UP"})
	})
}
