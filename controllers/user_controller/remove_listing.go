package user_controller

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

// RemoveListing godoc
// @Summary Remove one of the user's sell listings
// @Description Marks the listed vehicle as removed and drops it from the user's listings
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Listed vehicle ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Listing not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /users/me/listings/{vehicleId} [delete]
func RemoveListing(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("vehicleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid vehicle ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, ok := currentUser(c, ctx)
	if !ok {
		return
	}

	res, err := config.Users.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$pull": bson.M{"listings": bson.M{"vehicleId": vehicleID}}},
	)
	if err != nil {
		log.Printf("[users.listings] pull failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove listing"))
		return
	}
	if res.ModifiedCount == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Listing not found"))
		return
	}

	// The vehicle document stays around for booking history but leaves the catalog
	if _, err := config.Vehicles.UpdateOne(ctx,
		bson.M{"_id": vehicleID},
		bson.M{"$set": bson.M{"listingDetails.status": "removed", "availability.in_stock": false}},
	); err != nil {
		log.Printf("[users.listings] failed to mark vehicle removed: %v", err)
	}

	filter_cache.Invalidate()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Listing removed successfully", nil))
}
