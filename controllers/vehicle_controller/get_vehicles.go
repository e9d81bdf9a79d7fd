package vehicle_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetVehicles godoc
// @Summary List vehicles with filters
// @Description Retrieve vehicles with optional category, brand, fuel type, price range and free-text search filters, ordered by ascending ex-showroom price. Passing page/limit switches to a paginated response.
// @Tags Vehicles
// @Produce json
// @Param category query string false "Category (Car, Bike, Scooter, EV, Sports)"
// @Param brand query string false "Brand name"
// @Param fuel_type query string false "Fuel type"
// @Param min_price query number false "Minimum ex-showroom price"
// @Param max_price query number false "Maximum ex-showroom price"
// @Param search query string false "Free-text search (brand, model, variant, category, fuel, mileage, price)"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} models.ApiResponse "Vehicles fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vehicles [get]
func GetVehicles(c *gin.Context) {
	filter := parseVehicleFilter(c)
	query := filter.BuildQuery()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	findOpts := options.Find().SetSort(filter.Sort())

	// Pagination is opt-in; the classic browse page consumes the full list
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	paginated := page > 0 && limit > 0
	if paginated {
		findOpts.SetSkip(int64((page - 1) * limit)).SetLimit(int64(limit))
	}

	cursor, err := config.Vehicles.Find(ctx, query, findOpts)
	if err != nil {
		log.Printf("[vehicle.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch vehicles"))
		return
	}

	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		log.Printf("[vehicle.list] cursor decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch vehicles"))
		return
	}

	views := normalizeAll(raws, config.APIOrigin())

	if paginated {
		total, err := config.Vehicles.CountDocuments(ctx, query)
		if err != nil {
			log.Printf("[vehicle.list] count failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch vehicles"))
			return
		}
		meta := &models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      int(total),
			TotalPages: int((total + int64(limit) - 1) / int64(limit)),
		}
		c.JSON(http.StatusOK, models.PaginatedResponse(c, "Vehicles fetched successfully", views, meta))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Vehicles fetched successfully", views))
}
