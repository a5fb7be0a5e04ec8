package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/payments"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// SetupRoutes is the single entry‐point that wires up Auth, User, Admin and
// Order route groups.
func SetupRoutes(r *gin.Engine, st *store.Store, gateway payments.Gateway, uploadsDir string) {
	// 1️⃣ Public Auth routes (no middleware)
	SetupAuthRoutes(r, st)

	// 2️⃣ Storefront + checkout routes (JWT‐protected where needed)
	SetupUserRoutes(r, st, gateway)

	// 3️⃣ Admin routes (JWT + admin flag)
	SetupAdminRoutes(r, st, uploadsDir)

	// order feed routes
	SetupOrderRoutes(r)
}
