package vehicle_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetVehicleByID godoc
// @Summary Get single vehicle
// @Description Get the canonical vehicle view by ID
// @Tags Vehicles
// @Produce json
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid vehicle ID"
// @Failure 404 {object} models.ApiResponse "Vehicle not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vehicles/{id} [get]
func GetVehicleByID(c *gin.Context) {
	idStr := c.Param("id")

	oid, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid vehicle ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var raw bson.M
	if err := config.Vehicles.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Vehicle not found"))
			return
		}
		log.Printf("[vehicle.get] lookup failed for %s: %v", idStr, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch vehicle"))
		return
	}

	view := models.NormalizeVehicle(raw, config.APIOrigin())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Vehicle fetched successfully", view))
}
