package vehicle_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	filter_cache "github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/cache"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateVehicle godoc
// @Summary Update a vehicle
// @Description Owner dealer or admin updates vehicle fields
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param updates body map[string]any true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 403 {object} models.ApiResponse "Not the owner"
// @Failure 404 {object} models.ApiResponse "Vehicle not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vehicles/{id} [put]
func UpdateVehicle(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid vehicle ID"))
		return
	}

	var updates bson.M
	if err := c.ShouldBindJSON(&updates); err != nil || len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	delete(updates, "_id")
	delete(updates, "dealer")
	updates["last_updated"] = time.Now()
	updates["updatedAt"] = time.Now()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if _, ok := fetchOwnedVehicle(c, ctx, oid); !ok {
		return
	}

	var updated bson.M
	err = config.Vehicles.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": updates},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err != nil {
		log.Printf("[vehicle.update] update failed for %s: %v", oid.Hex(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update vehicle"))
		return
	}

	filter_cache.Invalidate()

	view := models.NormalizeVehicle(updated, config.APIOrigin())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Vehicle updated successfully", view))
}

// fetchOwnedVehicle loads the vehicle and enforces owner-or-admin access.
// On failure it writes the response itself and reports !ok.
func fetchOwnedVehicle(c *gin.Context, ctx context.Context, oid primitive.ObjectID) (bson.M, bool) {
	var raw bson.M
	if err := config.Vehicles.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Vehicle not found"))
			return nil, false
		}
		log.Printf("[vehicle.owner-check] lookup failed for %s: %v", oid.Hex(), err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch vehicle"))
		return nil, false
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	role, _ := middleware.GetUserRoleFromContext(c)
	if role == "admin" {
		return raw, true
	}
	if dealer, ok := raw["dealer"].(primitive.ObjectID); ok && dealer.Hex() == userID {
		return raw, true
	}
	if listedBy, ok := raw["listedBy"].(primitive.ObjectID); ok && listedBy.Hex() == userID {
		return raw, true
	}

	c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Not authorized"))
	return nil, false
}
