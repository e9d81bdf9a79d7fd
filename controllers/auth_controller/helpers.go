package auth_controller

import (
	"log"
	"net/http"
	"os"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/utils"
	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 7 * 24 * 60 * 60

// issueSession generates a JWT for the user and sets it as the auth_token
// cookie. Login and register responses still echo the user profile so the
// frontend does not need a second round trip.
func issueSession(c *gin.Context, user models.User) {
	token, err := utils.GenerateJWT(user.ID.Hex(), user.Email, user.Name, user.Role)
	if err != nil {
		log.Printf("[auth.session] failed to generate token: %v", err)
		return
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"auth_token",
		token,
		sessionMaxAge,
		"/",
		"",
		isProd,
		true,
	)
}
