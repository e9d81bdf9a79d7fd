package routes

import (
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/controllers/auth_controller"
	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		// Tight limit on credential endpoints
		auth.POST("/register", middleware.RateLimiter(10, time.Minute), auth_controller.Register)
		auth.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.Login)

		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
	}
}
