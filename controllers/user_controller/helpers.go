package user_controller

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// currentUser loads the authenticated user's document. Writes the error
// response itself; callers just return on !ok.
func currentUser(c *gin.Context, ctx context.Context) (models.User, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return models.User{}, false
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return models.User{}, false
	}

	var user models.User
	if err := config.Users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
			return models.User{}, false
		}
		log.Printf("[users] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load profile"))
		return models.User{}, false
	}
	return user, true
}

// vehiclesByID fetches and normalizes the referenced vehicles in one query.
func vehiclesByID(ctx context.Context, ids []primitive.ObjectID) map[string]models.Vehicle {
	out := make(map[string]models.Vehicle, len(ids))
	if len(ids) == 0 {
		return out
	}

	cursor, err := config.Vehicles.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		log.Printf("[users] vehicle query failed: %v", err)
		return out
	}
	var raws []bson.M
	if err := cursor.All(ctx, &raws); err != nil {
		log.Printf("[users] vehicle decode failed: %v", err)
		return out
	}

	apiOrigin := config.APIOrigin()
	for _, raw := range raws {
		v := models.NormalizeVehicle(raw, apiOrigin)
		if v.ID != "" {
			out[v.ID] = v
		}
	}
	return out
}
