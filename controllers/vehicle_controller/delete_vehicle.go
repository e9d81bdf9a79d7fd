package vehicle_controller

import (
	"log"
	"net/http"

	filter_cache "github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/cache"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DeleteVehicle godoc
// @Summary Delete a vehicle
// @Description Owner dealer or admin removes a vehicle from the catalog
// @Tags Vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid vehicle ID"
// @Failure 403 {object} models.ApiResponse "Not the owner"
// @Failure 404 {object} models.ApiResponse "Vehicle not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vehicles/{id} [delete]
func DeleteVehicle(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid vehicle ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if _, ok := fetchOwnedVehicle(c, ctx, oid); !ok {
		return
	}

	if _, err := config.Vehicles.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		log.Printf("[vehicle.delete] delete failed for %s: %v", oid.Hex(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete vehicle"))
		return
	}

	filter_cache.Invalidate()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Vehicle removed", gin.H{"_id": oid.Hex()}))
}
