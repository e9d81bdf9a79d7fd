package vehicle_controller

import (
	"strconv"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// uploadTimeout is generous: Cloudinary uploads of full-size photos routinely
// exceed the default request budget.
const uploadTimeout = 60 * time.Second

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseVehicleFilter reads the browse query parameters. Absent price bounds
// stay nil so they impose no constraint downstream.
func parseVehicleFilter(c *gin.Context) models.VehicleFilter {
	filter := models.VehicleFilter{
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		FuelType: c.Query("fuel_type"),
		Search:   c.Query("search"),
	}

	if raw := c.Query("min_price"); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &max
		}
	}

	return filter
}

// orderForComparison reorders fetched documents to match the first occurrence
// of each id in the request. Ids the store didn't resolve are skipped; callers
// needing full coverage check the result length themselves.
func orderForComparison(ids []string, raws []bson.M) []bson.M {
	byID := make(map[string]bson.M, len(raws))
	for _, raw := range raws {
		if oid, ok := raw["_id"].(primitive.ObjectID); ok {
			byID[oid.Hex()] = raw
		}
	}

	ordered := make([]bson.M, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if raw, ok := byID[id]; ok {
			ordered = append(ordered, raw)
		}
	}
	return ordered
}

// objectIDsFrom keeps the ids that parse as ObjectIDs; the rest simply won't
// resolve in the store.
func objectIDsFrom(ids []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			out = append(out, oid)
		}
	}
	return out
}

func normalizeAll(raws []bson.M, apiOrigin string) []models.Vehicle {
	views := make([]models.Vehicle, 0, len(raws))
	for _, raw := range raws {
		views = append(views, models.NormalizeVehicle(raw, apiOrigin))
	}
	return views
}
