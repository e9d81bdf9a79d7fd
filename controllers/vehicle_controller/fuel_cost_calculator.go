package vehicle_controller

import (
	"net/http"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/utils"
	"github.com/gin-gonic/gin"
)

type fuelCostRequest struct {
	Distance  float64 `json:"distance"`
	Mileage   float64 `json:"mileage"`
	FuelPrice float64 `json:"fuelPrice"`
}

// CalculateFuelCost godoc
// @Summary Fuel cost calculator
// @Description Project fuel spend for a distance at a given mileage and fuel price. The distance is already scaled to the caller's horizon.
// @Tags Calculators
// @Accept json
// @Produce json
// @Param request body fuelCostRequest true "Distance (km), mileage (kmpl), fuel price per litre"
// @Success 200 {object} models.ApiResponse "cost"
// @Failure 400 {object} models.ApiResponse "Invalid inputs"
// @Router /vehicles/fuel-cost [post]
func CalculateFuelCost(c *gin.Context) {
	var req fuelCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	cost, err := utils.CalculateFuelCost(req.Distance, req.Mileage, req.FuelPrice)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Distance, mileage and fuel price must be positive numbers"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Fuel cost calculated", gin.H{"cost": cost}))
}
