package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/order"
)

// SetupOrderRoutes registers the live order feed.
func SetupOrderRoutes(r *gin.Engine) {
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
