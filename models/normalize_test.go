package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNormalizeVehicle_NestedSchema(t *testing.T) {
	oid := primitive.NewObjectID()
	raw := RawVehicle{
		"_id":       oid,
		"brand":     "Royal Enfield",
		"model":     "Hunter 350",
		"variant":   "Metro",
		"category":  "bike",
		"fuel_type": "petrol",
		"year":      int32(2024),
		"pricing": bson.M{
			"ex_showroom": 149900.0,
			"on_road":     int64(172000),
		},
		"engine": bson.M{
			"capacity": "349 cc",
			"power":    "20.2 bhp",
			"torque":   "27 Nm",
		},
		"performance": bson.M{
			"top_speed": "114 km/h",
			"mileage":   36.2,
		},
		"ratings": bson.M{
			"user_rating":   4.4,
			"reviews_count": int32(812),
		},
		"features": bson.M{
			"safety": primitive.A{"Dual-channel ABS", " Dual-channel ABS ", "Halogen headlamp"},
		},
		"images": bson.M{
			"thumbnail": "https://cdn.example.com/hunter.jpg",
			"gallery":   primitive.A{"https://cdn.example.com/h1.jpg", "/h2.jpg"},
		},
		"availability": bson.M{
			"in_stock":           true,
			"delivery_time_days": int32(7),
		},
	}

	v := NormalizeVehicle(raw, testOrigin)

	assert.Equal(t, oid.Hex(), v.ID)
	assert.Equal(t, "Royal Enfield", v.Brand)
	assert.Equal(t, "Hunter 350", v.Model)
	require.NotNil(t, v.Year)
	assert.Equal(t, 2024, *v.Year)

	require.NotNil(t, v.Pricing.ExShowroomINR)
	assert.Equal(t, 149900.0, *v.Pricing.ExShowroomINR)
	require.NotNil(t, v.Pricing.OnRoadINR)
	assert.Equal(t, 172000.0, *v.Pricing.OnRoadINR)

	require.NotNil(t, v.Engine)
	require.NotNil(t, v.Engine.CapacityCC)
	assert.Equal(t, 349.0, *v.Engine.CapacityCC)
	require.NotNil(t, v.Engine.MaxPowerBHP)
	assert.Equal(t, 20.2, *v.Engine.MaxPowerBHP)
	assert.Nil(t, v.Battery)

	require.NotNil(t, v.Performance.TopSpeedKmph)
	assert.Equal(t, 114.0, *v.Performance.TopSpeedKmph)
	require.NotNil(t, v.Performance.MileageKmpl)
	assert.Equal(t, 36.2, *v.Performance.MileageKmpl)

	assert.Equal(t, 4.4, v.Ratings.UserRating)
	assert.Equal(t, 812, v.Ratings.ReviewsCount)

	// duplicates collapse after trimming
	assert.Equal(t, []string{"Dual-channel ABS", "Halogen headlamp"}, v.Features.Safety)
	assert.Empty(t, v.Features.Comfort)

	assert.Equal(t, "https://cdn.example.com/hunter.jpg", v.Images.Thumbnail)
	assert.Equal(t, []string{"https://cdn.example.com/h1.jpg", "http://localhost:8080/h2.jpg"}, v.Images.Gallery)

	assert.True(t, v.Availability.InStock)
	require.NotNil(t, v.Availability.DeliveryTimeDays)
	assert.Equal(t, 7, *v.Availability.DeliveryTimeDays)
}

func TestNormalizeVehicle_LegacyFlatExport(t *testing.T) {
	raw := RawVehicle{
		"_id":        "legacy-001",
		"brand":      "Hero",
		"model":      "Splendor Plus",
		"category":   "bike",
		"fuelType":   "petrol",
		"exShowroom": 79000.0,
		"onRoadInr":  89000.0,
		"image":      "/static/splendor.jpg",
	}

	v := NormalizeVehicle(raw, testOrigin)

	assert.Equal(t, "legacy-001", v.ID)
	assert.Equal(t, "petrol", v.FuelType)
	require.NotNil(t, v.Pricing.ExShowroomINR)
	assert.Equal(t, 79000.0, *v.Pricing.ExShowroomINR)
	require.NotNil(t, v.Pricing.OnRoadINR)
	assert.Equal(t, 89000.0, *v.Pricing.OnRoadINR)
	assert.Equal(t, "http://localhost:8080/static/splendor.jpg", v.Images.Thumbnail)

	// groups absent from the document stay absent, not zeroed
	assert.Nil(t, v.Engine)
	assert.Nil(t, v.Battery)
	assert.Nil(t, v.Performance.TopSpeedKmph)
	assert.Nil(t, v.Year)
}

func TestNormalizeVehicle_PricingAliasPrecedence(t *testing.T) {
	// nested object wins over flat legacy fields
	raw := RawVehicle{
		"pricing":    bson.M{"ex_showroom": 100000.0},
		"exShowroom": 90000.0,
		"price":      80000.0,
	}
	v := NormalizeVehicle(raw, testOrigin)
	require.NotNil(t, v.Pricing.ExShowroomINR)
	assert.Equal(t, 100000.0, *v.Pricing.ExShowroomINR)

	// flat price is the last resort
	v = NormalizeVehicle(RawVehicle{"price": 80000.0}, testOrigin)
	require.NotNil(t, v.Pricing.ExShowroomINR)
	assert.Equal(t, 80000.0, *v.Pricing.ExShowroomINR)
}

func TestNormalizeVehicle_ZeroPriceSurvives(t *testing.T) {
	raw := RawVehicle{"pricing": bson.M{"ex_showroom": 0.0}}
	v := NormalizeVehicle(raw, testOrigin)
	require.NotNil(t, v.Pricing.ExShowroomINR)
	assert.Equal(t, 0.0, *v.Pricing.ExShowroomINR)
}

func TestNormalizeVehicle_EmptyDocument(t *testing.T) {
	v := NormalizeVehicle(RawVehicle{}, testOrigin)

	assert.Equal(t, "", v.ID)
	assert.Nil(t, v.Pricing.ExShowroomINR)
	assert.Nil(t, v.Engine)
	assert.Equal(t, 0.0, v.Ratings.UserRating)
	assert.Equal(t, PlaceholderImageURL, v.Images.Thumbnail)
	assert.Empty(t, v.Images.Gallery)
	assert.False(t, v.Availability.InStock)

	// nil input behaves like an empty document
	v = NormalizeVehicle(nil, testOrigin)
	assert.Equal(t, PlaceholderImageURL, v.Images.Thumbnail)
}

func TestNormalizeVehicle_UserListingShape(t *testing.T) {
	raw := RawVehicle{
		"product_id": "user_abc",
		"brand":      "Bajaj",
		"model":      "Pulsar NS200",
		"engine": bson.M{
			"capacity": "199.5 cc",
			"power":    "24.5 bhp",
			"torque":   "18.74 Nm",
		},
		"performance": bson.M{
			"top_speed": "136 km/h",
			"mileage":   "35 kmpl",
		},
		"features": bson.M{
			"safety": "Single-channel ABS, Perimeter frame",
		},
	}

	v := NormalizeVehicle(raw, testOrigin)

	assert.Equal(t, "user_abc", v.ID)
	require.NotNil(t, v.Engine)
	require.NotNil(t, v.Engine.CapacityCC)
	assert.Equal(t, 199.5, *v.Engine.CapacityCC)
	require.NotNil(t, v.Performance.MileageKmpl)
	assert.Equal(t, 35.0, *v.Performance.MileageKmpl)
	assert.Equal(t, []string{"Single-channel ABS", "Perimeter frame"}, v.Features.Safety)
}

func TestNormalizeVehicle_BsonDDocument(t *testing.T) {
	raw := RawVehicle{
		"pricing": bson.D{{Key: "ex_showroom", Value: 125000.0}},
	}
	v := NormalizeVehicle(raw, testOrigin)
	require.NotNil(t, v.Pricing.ExShowroomINR)
	assert.Equal(t, 125000.0, *v.Pricing.ExShowroomINR)
}
