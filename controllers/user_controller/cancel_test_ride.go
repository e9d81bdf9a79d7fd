package user_controller

import (
	"log"
	"net/http"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CancelTestRide godoc
// @Summary Cancel a test ride
// @Description Marks one of the user's test rides as cancelled
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param rideId path string true "Test ride ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Test ride not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /users/me/test-rides/{rideId}/cancel [put]
func CancelTestRide(c *gin.Context) {
	rideID, err := primitive.ObjectIDFromHex(c.Param("rideId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid test ride ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, ok := currentUser(c, ctx)
	if !ok {
		return
	}

	res, err := config.Users.UpdateOne(ctx,
		bson.M{"_id": user.ID, "testRides._id": rideID},
		bson.M{"$set": bson.M{"testRides.$.status": models.BookingStatusCancelled}},
	)
	if err != nil {
		log.Printf("[users.test_rides] cancel failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to cancel test ride"))
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Test ride not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Test ride cancelled successfully", nil))
}
