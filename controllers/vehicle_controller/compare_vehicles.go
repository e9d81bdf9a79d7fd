package vehicle_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	minCompareVehicles = 2
	maxCompareVehicles = 4
)

type compareRequest struct {
	IDs []string `json:"ids"`
}

// CompareVehicles godoc
// @Summary Compare vehicles
// @Description Fetch 2-4 vehicles by ID and return their canonical views in request order. Ids the store cannot resolve are skipped.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Param request body compareRequest true "Vehicle IDs to compare"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Comparison size outside 2-4"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vehicles/compare [post]
func CompareVehicles(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if len(req.IDs) < minCompareVehicles || len(req.IDs) > maxCompareVehicles {
		msg := fmt.Sprintf("Please select 2-4 vehicles to compare (got %d)", len(req.IDs))
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, msg))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cursor, err := config.Vehicles.Find(ctx, bson.M{"_id": bson.M{"$in": objectIDsFrom(req.IDs)}})
	if err != nil {
		log.Printf("[vehicle.compare] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch vehicles for comparison"))
		return
	}

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		log.Printf("[vehicle.compare] cursor decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch vehicles for comparison"))
		return
	}

	views := normalizeAll(orderForComparison(req.IDs, raws), config.APIOrigin())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Vehicles fetched for comparison", views))
}
