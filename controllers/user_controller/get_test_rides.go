package user_controller

import (
	"net/http"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testRideView struct {
	ID            string    `json:"_id"`
	VehicleID     string    `json:"vehicleId"`
	VehicleName   string    `json:"vehicleName"`
	VehicleImage  string    `json:"vehicleImage,omitempty"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Status        string    `json:"status"`
	Location      string    `json:"location,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// GetTestRides godoc
// @Summary List the authenticated user's test rides
// @Description Returns each test ride with the vehicle's name and thumbnail
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 404 {object} models.ApiResponse "User not found"
// @Router /users/me/test-rides [get]
func GetTestRides(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, ok := currentUser(c, ctx)
	if !ok {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(user.TestRides))
	for _, ride := range user.TestRides {
		ids = append(ids, ride.VehicleID)
	}
	vehicles := vehiclesByID(ctx, ids)

	views := make([]testRideView, 0, len(user.TestRides))
	for _, ride := range user.TestRides {
		view := testRideView{
			ID:            ride.ID.Hex(),
			VehicleID:     ride.VehicleID.Hex(),
			ScheduledDate: ride.ScheduledDate,
			Status:        ride.Status,
			Location:      ride.Location,
			CreatedAt:     ride.CreatedAt,
		}
		if v, ok := vehicles[ride.VehicleID.Hex()]; ok {
			view.VehicleName = v.Brand + " " + v.Model
			view.VehicleImage = v.Images.Thumbnail
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Test rides retrieved successfully", views))
}
