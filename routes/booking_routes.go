package routes

import (
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/controllers/booking_controller"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up test ride and inquiry booking routes
func SetupBookingRoutes(router *gin.RouterGroup) {
	bookings := router.Group("/bookings")
	bookings.Use(middleware.AuthMiddleware())
	{
		bookings.POST("", booking_controller.CreateBooking)
		bookings.GET("/my-bookings", booking_controller.GetMyBookings)

		// Dealer back office
		bookings.GET("", middleware.RequireRoles("dealer", "admin"), booking_controller.GetBookings)
		bookings.PUT("/:id/status", middleware.RequireRoles("dealer", "admin"), booking_controller.UpdateBookingStatus)
	}
}
