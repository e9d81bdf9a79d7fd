package user_controller

import (
	"net/http"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listingView struct {
	VehicleID string    `json:"vehicleId"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Variant   string    `json:"variant,omitempty"`
	Year      *int      `json:"year,omitempty"`
	Category  string    `json:"category"`
	FuelType  string    `json:"fuel_type"`
	Price     *float64  `json:"price,omitempty"`
	Images    []string  `json:"images"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// GetListings godoc
// @Summary List the authenticated user's sell listings
// @Description Returns the vehicles the user has listed for sale, with pricing and images
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 404 {object} models.ApiResponse "User not found"
// @Router /users/me/listings [get]
func GetListings(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	user, ok := currentUser(c, ctx)
	if !ok {
		return
	}

	ids := make([]primitive.ObjectID, 0, len(user.Listings))
	for _, ref := range user.Listings {
		ids = append(ids, ref.VehicleID)
	}
	vehicles := vehiclesByID(ctx, ids)

	views := make([]listingView, 0, len(user.Listings))
	for _, ref := range user.Listings {
		v, ok := vehicles[ref.VehicleID.Hex()]
		if !ok {
			continue
		}
		images := v.Images.Gallery
		if len(images) == 0 && v.Images.Thumbnail != "" {
			images = []string{v.Images.Thumbnail}
		}
		views = append(views, listingView{
			VehicleID: ref.VehicleID.Hex(),
			Brand:     v.Brand,
			Model:     v.Model,
			Variant:   v.Variant,
			Year:      v.Year,
			Category:  v.Category,
			FuelType:  v.FuelType,
			Price:     v.Pricing.ExShowroomINR,
			Images:    images,
			Status:    ref.Status,
			CreatedAt: ref.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Listings retrieved successfully", views))
}
