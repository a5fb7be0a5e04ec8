package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// GET /api/products/:id
func GetProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := st.Snapshot()
		product := doc.Product(c.Param("id"))
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
