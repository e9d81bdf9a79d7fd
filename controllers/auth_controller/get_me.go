package auth_controller

import (
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

// GetMe godoc
// @Summary Get the authenticated user
// @Description Returns the profile of the user identified by the auth_token cookie or Bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.PublicUser}
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 404 {object} models.ApiResponse "User not found"
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.Users.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
			return
		}
		log.Printf("[auth.me] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load profile"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Profile loaded", user.Public()))
}
