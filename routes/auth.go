package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/auth"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// SetupAuthRoutes registers all “/api/auth/*” endpoints.
func SetupAuthRoutes(r *gin.Engine, st *store.Store) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", auth.Register(st))
		authGroup.POST("/login", auth.Login(st))
		authGroup.POST("/logout", auth.Logout())
		authGroup.GET("/me", auth.Me())
	}
}
