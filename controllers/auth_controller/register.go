package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

// Register godoc
// @Summary Register a new user
// @Description Create an account with email and password, returns a JWT cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "Name, email, password, optional phone"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing fields or email in use"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Name, email and a password of at least 6 characters are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Reject duplicate emails up front
	var existing models.User
	err := config.Users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&existing)
	if err == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Printf("[auth.register] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		log.Printf("[auth.register] hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Name:      req.Name,
		Email:     req.Email,
		Password:  string(hash),
		Phone:     req.Phone,
		Role:      "user",
		TestRides: []models.TestRide{},
		Listings:  []models.ListingRef{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := config.Users.InsertOne(ctx, user); err != nil {
		log.Printf("[auth.register] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	issueSession(c, user)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", user.Public()))
}
