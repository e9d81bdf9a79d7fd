package routes

import (
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/controllers/user_controller"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the profile routes. All paths act on the
// authenticated user; there is no cross-user access.
func SetupUserRoutes(router *gin.RouterGroup) {
	me := router.Group("/users/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("/test-rides", user_controller.GetTestRides)
		me.POST("/test-rides", user_controller.BookTestRide)
		me.PUT("/test-rides/:rideId/cancel", user_controller.CancelTestRide)

		me.GET("/listings", user_controller.GetListings)
		me.DELETE("/listings/:vehicleId", user_controller.RemoveListing)
	}
}
