package routes

import (
	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/checkout"
	orderControllers "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/order"
	productcontroller "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/product"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/middleware"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/payments"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// SetupUserRoutes registers the storefront endpoints: the public catalog
// plus checkout and order history behind auth.
func SetupUserRoutes(r *gin.Engine, st *store.Store, gateway payments.Gateway) {
	api := r.Group("/api")
	{
		// ─────────── Catalog (public) ───────────
		api.GET("/products", productcontroller.GetProducts(st))
		api.GET("/products/:id", productcontroller.GetProduct(st))
	}

	authed := r.Group("/api")
	authed.Use(middleware.RequireAuth)
	{
		authed.POST("/checkout", checkoutControllers.Checkout(st, gateway))
		authed.GET("/orders", orderControllers.GetOrders(st))
	}
}
