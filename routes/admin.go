package routes

import (
	"github.com/gin-gonic/gin"

	orderControllers "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/order"
	productcontroller "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/product"
	uploadControllers "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/upload"
	userControllers "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/user"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/middleware"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// SetupAdminRoutes registers every admin‐only endpoint. All of them require
// a valid token carrying the admin flag.
func SetupAdminRoutes(r *gin.Engine, st *store.Store, uploadsDir string) {
	admin := r.Group("/api")
	admin.Use(middleware.RequireAuth, middleware.RequireAdmin)
	{
		// ─────────── Product Management ───────────
		admin.POST("/products", productcontroller.CreateProduct(st))
		admin.PUT("/products/:id", productcontroller.UpdateProduct(st))

		// ─────────── Order Management ───────────
		admin.PUT("/orders/:id/status", orderControllers.UpdateOrderStatus(st))

		// ─────────── Image Upload ───────────
		admin.POST("/upload", uploadControllers.UploadImage(uploadsDir))

		// ─────────── Bulk Catalog + Users ───────────
		adminGroup := admin.Group("/admin")
		{
			adminGroup.GET("/users", userControllers.GetAllUsers(st))
			adminGroup.GET("/products/export-excel", productcontroller.ExportProductsToExcel(st))
			adminGroup.POST("/products/import-excel", productcontroller.ImportProductsFromExcel(st))
		}
	}
}
