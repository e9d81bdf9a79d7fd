package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/config"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login godoc
// @Summary Login with email and password
// @Description Authenticate a user and set the auth_token cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "Email and password"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := config.Users.FindOne(ctx, bson.M{"email": req.Email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("[auth.login] user not found: %s", req.Email)
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.login] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Printf("[auth.login] invalid password: %s", req.Email)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	issueSession(c, user)
	log.Printf("[auth.login] success: %s (%s)", user.Email, user.ID.Hex())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", user.Public()))
}
