package user_controller

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
)

type bookTestRideRequest struct {
	VehicleID     string `json:"vehicleId"`
	ScheduledDate string `json:"scheduledDate"`
	Location      string `json:"location"`
}

// BookTestRide godoc
// @Summary Book a test ride
// @Description Adds a pending test ride for a vehicle to the user's profile
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body bookTestRideRequest true "Vehicle, date and showroom location"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Vehicle not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /users/me/test-rides [post]
func BookTestRide(c *gin.Context) {
	var req bookTestRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	vehicleID, err := primitive.ObjectIDFromHex(req.VehicleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid vehicle ID"))
		return
	}

	scheduled, err := time.Parse(time.RFC3339, req.ScheduledDate)
	if err != nil {
		scheduled, err = time.Parse("2006-01-02", req.ScheduledDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "scheduledDate must be a valid date"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, ok := currentUser(c, ctx)
	if !ok {
		return
	}

	if err := config.Vehicles.FindOne(ctx, bson.M{"_id": vehicleID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Vehicle not found"))
			return
		}
		log.Printf("[users.test_rides] vehicle lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to book test ride"))
		return
	}

	ride := models.TestRide{
		ID:            primitive.NewObjectID(),
		VehicleID:     vehicleID,
		ScheduledDate: scheduled,
		Location:      req.Location,
		Status:        models.BookingStatusPending,
		CreatedAt:     time.Now(),
	}

	if _, err := config.Users.UpdateOne(ctx,
		bson.M{"_id": user.ID},
		bson.M{"$push": bson.M{"testRides": ride}},
	); err != nil {
		log.Printf("[users.test_rides] push failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to book test ride"))
		return
	}

	log.Printf("[users.test_rides] user %s booked ride %s", user.ID.Hex(), ride.ID.Hex())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Test ride booked successfully", ride))
}
