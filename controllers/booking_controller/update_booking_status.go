package booking_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type updateBookingStatusRequest struct {
	Status string `json:"status"`
}

// UpdateBookingStatus godoc
// @Summary Update a booking's status
// @Description Moves a booking to pending, confirmed or cancelled. Dealer or admin only
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body updateBookingStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.Booking}
// @Failure 400 {object} models.ApiResponse "Invalid status"
// @Failure 404 {object} models.ApiResponse "Booking not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /bookings/{id}/status [put]
func UpdateBookingStatus(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid booking ID"))
		return
	}

	var req updateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Status must be pending, confirmed or cancelled"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var booking models.Booking
	err = config.Bookings.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Booking not found"))
			return
		}
		log.Printf("[bookings.status] update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update booking"))
		return
	}

	// Keep the mirrored test ride entry in sync with the booking
	if booking.Type == models.BookingTypeTestRide {
		if _, err := config.Users.UpdateOne(ctx,
			bson.M{"_id": booking.User, "testRides._id": booking.ID},
			bson.M{"$set": bson.M{"testRides.$.status": req.Status}},
		); err != nil {
			log.Printf("[bookings.status] failed to sync test ride: %v", err)
		}
	}

	log.Printf("[bookings.status] booking %s -> %s", booking.ID.Hex(), req.Status)

	views := decorate(ctx, []models.Booking{booking}, true)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Booking updated successfully", views[0]))
}
