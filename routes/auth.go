package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/debghosh/kreations/auth"
	"github.com/debghosh/kreations/middleware"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, deps *Deps) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", auth.Login(deps.Sessions))

		// Logout and profile need a live token
		authGroup.POST("/logout", middleware.ValidateToken, auth.Logout(deps.Sessions))
		authGroup.GET("/me", middleware.ValidateToken, auth.Me(deps.Sessions))
	}
}
