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

type userListingRequest struct {
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Variant  string  `json:"variant"`
	Year     int     `json:"year"`
	Category string  `json:"category"`
	FuelType string  `json:"fuel_type"`
	Price    float64 `json:"price"`

	Mileage     string `json:"mileage"`
	Condition   string `json:"condition"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`

	EngineCapacity   float64 `json:"engine_capacity"`
	MaxPower         float64 `json:"max_power"`
	MaxTorque        float64 `json:"max_torque"`
	TopSpeed         float64 `json:"top_speed"`
	MileageKmpl      float64 `json:"mileage_kmpl"`
	SeatCapacity     int     `json:"seat_capacity"`
	KerbWeight       float64 `json:"kerb_weight"`
	FuelTankCapacity float64 `json:"fuel_tank_capacity"`

	// string or array, both occur in the wild
	SafetyFeatures     any `json:"safety_features"`
	ComfortFeatures    any `json:"comfort_features"`
	TechnologyFeatures any `json:"technology_features"`

	Images []string `json:"images"`
}

// CreateUserListing godoc
// @Summary Create a user listing
// @Description Sell-your-vehicle flow: builds a current-format document (string+unit measurement fields) and links it to the seller's account
// @Tags Vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param listing body userListingRequest true "Listing details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing required fields"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /vehicles/user-listing [post]
func CreateUserListing(c *gin.Context) {
	var req userListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	if req.Brand == "" || req.Model == "" || req.Category == "" || req.FuelType == "" || req.Price <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing required fields: brand, model, category, fuel_type and a positive price are required"))
		return
	}

	userID, _ := middleware.GetUserIDFromContext(c)
	sellerOID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid session"))
		return
	}

	now := time.Now()
	year := req.Year
	if year == 0 {
		year = now.Year()
	}

	engine := bson.M{}
	if s, ok := models.NumberWithUnit(req.EngineCapacity, "cc"); ok && req.EngineCapacity > 0 {
		engine["capacity"] = s
	}
	if s, ok := models.NumberWithUnit(req.MaxPower, "bhp"); ok && req.MaxPower > 0 {
		engine["power"] = s
	}
	if s, ok := models.NumberWithUnit(req.MaxTorque, "Nm"); ok && req.MaxTorque > 0 {
		engine["torque"] = s
	}

	performance := bson.M{}
	if s, ok := models.NumberWithUnit(req.TopSpeed, "km/h"); ok && req.TopSpeed > 0 {
		performance["top_speed"] = s
	}
	if req.MileageKmpl > 0 {
		if s, ok := models.NumberWithUnit(req.MileageKmpl, "kmpl"); ok {
			performance["mileage"] = s
		}
	} else if req.Mileage != "" {
		performance["mileage"] = req.Mileage
	}

	dimensions := bson.M{}
	if s, ok := models.NumberWithUnit(req.KerbWeight, "kg"); ok && req.KerbWeight > 0 {
		dimensions["weight"] = s
	}

	doc := bson.M{
		"product_id":  "user_" + uuid.NewString(),
		"category":    req.Category,
		"brand":       req.Brand,
		"model":       req.Model,
		"variant":     req.Variant,
		"year":        year,
		"fuel_type":   req.FuelType,
		"engine":      engine,
		"performance": performance,
		"dimensions":  dimensions,
		"features": bson.M{
			"safety":     models.EnsureStringArray(req.SafetyFeatures),
			"comfort":    models.EnsureStringArray(req.ComfortFeatures),
			"technology": models.EnsureStringArray(req.TechnologyFeatures),
		},
		"pricing": bson.M{
			"ex_showroom": req.Price,
			"currency":    "INR",
		},
		"isUserListing": true,
		"listedBy":      sellerOID,
		"listingDetails": bson.M{
			"createdBy":   "user",
			"createdAt":   now,
			"lastUpdated": now,
			"condition":   req.Condition,
			"description": req.Description,
			"location":    req.Location,
			"contact":     req.Contact,
			"mileage":     req.Mileage,
		},
		"createdAt": now,
		"updatedAt": now,
	}

	if len(req.Images) > 0 {
		doc["images"] = bson.M{
			"thumbnail": req.Images[0],
			"gallery":   req.Images,
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result, err := config.Vehicles.InsertOne(ctx, doc)
	if err != nil {
		log.Printf("[vehicle.user-listing] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create listing"))
		return
	}
	doc["_id"] = result.InsertedID

	// Link the listing to the seller's account
	vehicleOID := result.InsertedID.(primitive.ObjectID)
	listingRef := models.ListingRef{VehicleID: vehicleOID, Status: "active", CreatedAt: now}
	if _, err := config.Users.UpdateOne(ctx,
		bson.M{"_id": sellerOID},
		bson.M{"$push": bson.M{"listings": listingRef}},
	); err != nil {
		log.Printf("[vehicle.user-listing] failed to link listing %s to user %s: %v", vehicleOID.Hex(), userID, err)
	}

	filter_cache.Invalidate()

	view := models.NormalizeVehicle(doc, config.APIOrigin())
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Vehicle listed successfully", view))
}
