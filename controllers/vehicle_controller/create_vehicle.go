package vehicle_controller

import (
	"log"
	"net/http"
	"time"

	filter_cache "github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/cache"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateVehicle godoc
// @Summary Create a catalog vehicle
// @Description Dealer adds a vehicle to the catalog. The document is stored as sent (any of the supported shapes) and normalized on read.
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicle body map[string]any true "Vehicle document"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing required fields"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vehicles [post]
func CreateVehicle(c *gin.Context) {
	var doc bson.M
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	for _, field := range []string{"brand", "model", "category", "fuel_type"} {
		if models.ResolveString(doc[field]) == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing required fields: brand, model, category and fuel_type are required"))
			return
		}
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	now := time.Now()

	delete(doc, "_id")
	if models.ResolveString(doc["product_id"]) == "" {
		doc["product_id"] = uuid.NewString()
	}
	if dealerOID, err := primitive.ObjectIDFromHex(userID); err == nil {
		doc["dealer"] = dealerOID
	}
	doc["last_updated"] = now
	doc["createdAt"] = now
	doc["updatedAt"] = now

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := config.Vehicles.InsertOne(ctx, doc)
	if err != nil {
		log.Printf("[vehicle.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create vehicle"))
		return
	}
	doc["_id"] = result.InsertedID

	filter_cache.Invalidate()

	view := models.NormalizeVehicle(doc, config.APIOrigin())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Vehicle created successfully", view))
}
