package booking_controller

import (
	"log"
	"net/http"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetBookings godoc
// @Summary List all bookings
// @Description Returns every booking newest first with vehicle and customer details. Dealer or admin only
// @Tags Bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse "Not authorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /bookings [get]
func GetBookings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	cursor, err := config.Bookings.Find(ctx,
		bson.M{},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
	)
	if err != nil {
		log.Printf("[bookings.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load bookings"))
		return
	}

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		log.Printf("[bookings.list] decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load bookings"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Bookings retrieved successfully", decorate(ctx, bookings, true)))
}
