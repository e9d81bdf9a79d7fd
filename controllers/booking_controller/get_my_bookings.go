package booking_controller

import (
	"log"
	"net/http"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetMyBookings godoc
// @Summary List the authenticated user's bookings
// @Description Returns the user's bookings newest first, each with a compact vehicle summary
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /bookings/my-bookings [get]
func GetMyBookings(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}
	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cursor, err := config.Bookings.Find(ctx,
		bson.M{"user": userOID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		log.Printf("[bookings.mine] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load bookings"))
		return
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		log.Printf("[bookings.mine] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load bookings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Bookings retrieved successfully", decorate(ctx, bookings, false)))
}
