package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// UpdateProductRequest carries optional fields; only the ones present in
// the payload are merged into the product.
type UpdateProductRequest struct {
	Name             *string            `json:"name"`
	Brand            *string            `json:"brand"`
	Category         *string            `json:"category"`
	Price            *float64           `json:"price"`
	Rating           *float64           `json:"rating"`
	ReviewCount      *int               `json:"reviewCount"`
	Stock            *int               `json:"stock"`
	Images           *[]string          `json:"images"`
	ShortDescription *string            `json:"shortDescription"`
	Description      *string            `json:"description"`
	Highlights       *[]string          `json:"highlights"`
	Specs            *map[string]string `json:"specs"`
}

// PUT /api/products/:id (admin)
//
// Orders placed before this update keep their snapshots of the old name,
// price and image.
func UpdateProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Price != nil && *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		if req.Stock != nil && *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
			return
		}

		doc := st.Snapshot()
		product := doc.Product(c.Param("id"))
		if product == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if req.Name != nil {
			product.Name = *req.Name
		}
		if req.Brand != nil {
			product.Brand = *req.Brand
		}
		if req.Category != nil {
			product.Category = *req.Category
		}
		if req.Price != nil {
			product.Price = *req.Price
		}
		if req.Rating != nil {
			product.Rating = *req.Rating
		}
		if req.ReviewCount != nil {
			product.ReviewCount = *req.ReviewCount
		}
		if req.Stock != nil {
			product.Stock = *req.Stock
		}
		if req.Images != nil {
			product.Images = *req.Images
		}
		if req.ShortDescription != nil {
			product.ShortDescription = *req.ShortDescription
		}
		if req.Description != nil {
			product.Description = *req.Description
		}
		if req.Highlights != nil {
			product.Highlights = *req.Highlights
		}
		if req.Specs != nil {
			product.Specs = *req.Specs
		}

		if err := st.Submit(doc); err != nil {
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Product changed concurrently, please retry"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"product": product})
	}
}
