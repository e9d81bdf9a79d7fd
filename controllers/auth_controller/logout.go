package auth_controller

import (
	"net/http"
	"os"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout user
// @Description Clears the auth_token cookie. The cookie attributes must match the ones used at login
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	// MaxAge < 0 deletes the cookie; name, path and flags must match login
	c.SetCookie(
		"auth_token",
		"",
		-1,
		"/",
		"",
		isProd,
		true,
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
