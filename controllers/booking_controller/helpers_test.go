package booking_controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
)

func TestTestRideMirror(t *testing.T) {
	now := time.Now()
	booking := models.Booking{
		ID:            primitive.NewObjectID(),
		User:          primitive.NewObjectID(),
		Vehicle:       primitive.NewObjectID(),
		Type:          models.BookingTypeTestRide,
		PreferredDate: now.Add(48 * time.Hour),
		PreferredTime: "10:30",
		Status:        models.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	ride := testRideMirror(booking)

	assert.Equal(t, booking.ID, ride.ID, "mirror shares the booking's ID so status updates can find it")
	assert.Equal(t, booking.Vehicle, ride.VehicleID)
	assert.Equal(t, booking.PreferredDate, ride.ScheduledDate)
	assert.Equal(t, models.BookingStatusPending, ride.Status)
	assert.Equal(t, now, ride.CreatedAt)
}
