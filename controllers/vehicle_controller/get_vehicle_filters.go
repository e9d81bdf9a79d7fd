package vehicle_controller

import (
	"log"
	"net/http"
	"sort"

	filter_cache "github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/cache"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// GetVehicleFilters godoc
// @Summary Get browse filter metadata
// @Description Distinct brands, categories and fuel types for the browse sidebar
// @Tags Vehicles
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vehicles/filters [get]
func GetVehicleFilters(c *gin.Context) {
	if meta, ok := filter_cache.GetMetadata(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	meta := models.FilterMetadata{}
	for _, field := range []struct {
		name string
		dst  *[]string
	}{
		{"brand", &meta.Brands},
		{"category", &meta.Categories},
		{"fuel_type", &meta.FuelTypes},
	} {
		values, err := config.Vehicles.Distinct(ctx, field.name, bson.M{})
		if err != nil {
			log.Printf("[vehicle.filters] distinct %s failed: %v", field.name, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch filter metadata"))
			return
		}
		out := make([]string, 0, len(values))
		for _, v := range values {
			if s, ok := v.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		sort.Strings(out)
		*field.dst = out
	}

	filter_cache.SetMetadata(meta)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", meta))
}
