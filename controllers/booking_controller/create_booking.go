package booking_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type createBookingRequest struct {
	Vehicle       string                `json:"vehicle"`
	Type          string                `json:"type"`
	PreferredDate string                `json:"preferredDate"`
	PreferredTime string                `json:"preferredTime"`
	Message       string                `json:"message"`
	ContactInfo   models.BookingContact `json:"contactInfo"`
}

// CreateBooking godoc
// @Summary Create a test ride or inquiry booking
// @Description Books a test ride or sends a dealer inquiry for a vehicle
// @Tags Bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createBookingRequest true "Vehicle, booking type, preferred slot and contact info"
// @Success 201 {object} models.ApiResponse{data=models.Booking}
// @Failure 400 {object} models.ApiResponse "Invalid booking"
// @Failure 404 {object} models.ApiResponse "Vehicle not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /bookings [post]
func CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if !models.ValidBookingType(req.Type) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Booking type must be test_ride or inquiry"))
		return
	}
	if req.PreferredTime == "" || req.ContactInfo.Phone == "" || req.ContactInfo.Email == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "preferredTime and contactInfo are required"))
		return
	}

	preferredDate, err := time.Parse(time.RFC3339, req.PreferredDate)
	if err != nil {
		// Date-only input from the booking form
		preferredDate, err = time.Parse("2006-01-02", req.PreferredDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "preferredDate must be a valid date"))
			return
		}
	}

	vehicleID, err := primitive.ObjectIDFromHex(req.Vehicle)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid vehicle ID"))
		return
	}

	userOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Bookings always reference an existing vehicle
	if err := config.Vehicles.FindOne(ctx, bson.M{"_id": vehicleID}).Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Vehicle not found"))
			return
		}
		log.Printf("[bookings.create] vehicle lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create booking"))
		return
	}

	now := time.Now()
	booking := models.Booking{
		ID:            primitive.NewObjectID(),
		User:          userOID,
		Vehicle:       vehicleID,
		Type:          req.Type,
		PreferredDate: preferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		Status:        models.BookingStatusPending,
		ContactInfo:   req.ContactInfo,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := config.Bookings.InsertOne(ctx, booking); err != nil {
		log.Printf("[bookings.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create booking"))
		return
	}

	// Test rides also show up on the user's dashboard
	if booking.Type == models.BookingTypeTestRide {
		if _, err := config.Users.UpdateOne(ctx,
			bson.M{"_id": userOID},
			bson.M{"$push": bson.M{"testRides": testRideMirror(booking)}},
		); err != nil {
			log.Printf("[bookings.create] failed to mirror test ride: %v", err)
		}
	}

	log.Printf("[bookings.create] %s booking %s for vehicle %s", booking.Type, booking.ID.Hex(), vehicleID.Hex())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Booking created successfully", booking))
}
