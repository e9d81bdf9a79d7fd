package routes

import (
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/controllers/vehicle_controller"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up the catalog, comparison, calculator and listing routes
func SetupVehicleRoutes(router *gin.RouterGroup) {
	vehicles := router.Group("/vehicles")

	// Public browse endpoints
	browse := vehicles.Group("")
	browse.Use(middleware.RateLimiter(120, time.Minute))
	{
		browse.GET("", vehicle_controller.GetVehicles)
		browse.GET("/filters", vehicle_controller.GetVehicleFilters)
		browse.GET("/:id", vehicle_controller.GetVehicleByID)
	}

	// Comparison and calculators
	tools := vehicles.Group("")
	tools.Use(middleware.RateLimiter(60, time.Minute))
	{
		tools.POST("/compare", vehicle_controller.CompareVehicles)
		tools.POST("/emi", vehicle_controller.CalculateEMI)
		tools.POST("/fuel-cost", vehicle_controller.CalculateFuelCost)
		tools.GET("/emi/quote.pdf", vehicle_controller.DownloadLoanQuotePDF)
	}

	// Sell-your-vehicle flow
	listings := vehicles.Group("")
	listings.Use(middleware.AuthMiddleware())
	{
		listings.POST("/user-listing", vehicle_controller.CreateUserListing)
		listings.POST("/user-listing/images", vehicle_controller.UploadListingImages)
	}

	// Dealer inventory management
	inventory := vehicles.Group("")
	inventory.Use(middleware.AuthMiddleware(), middleware.RequireRoles("dealer", "admin"))
	{
		inventory.POST("", vehicle_controller.CreateVehicle)
		inventory.PUT("/:id", vehicle_controller.UpdateVehicle)
		inventory.DELETE("/:id", vehicle_controller.DeleteVehicle)
	}
}
