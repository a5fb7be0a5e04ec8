package productcontroller

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// GET /api/products
//
// Supports free-text search (name, brand, description), category filter
// and the storefront sort modes.
func GetProducts(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := strings.ToLower(c.Query("q"))
		category := c.Query("category")
		sortBy := c.DefaultQuery("sort", "popular")

		doc := st.Snapshot()

		list := make([]models.Product, 0, len(doc.Products))
		for _, p := range doc.Products {
			okQ := q == "" ||
				strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Brand), q) ||
				strings.Contains(strings.ToLower(p.Description), q)
			okCat := category == "" || category == "All" || p.Category == category
			if okQ && okCat {
				list = append(list, p)
			}
		}

		switch sortBy {
		case "price-low":
			sort.SliceStable(list, func(i, j int) bool { return list[i].Price < list[j].Price })
		case "price-high":
			sort.SliceStable(list, func(i, j int) bool { return list[i].Price > list[j].Price })
		case "rating":
			sort.SliceStable(list, func(i, j int) bool { return list[i].Rating > list[j].Rating })
		case "popular":
			sort.SliceStable(list, func(i, j int) bool { return list[i].ReviewCount > list[j].ReviewCount })
		}

		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}
