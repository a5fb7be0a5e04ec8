package productcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

type CreateProductRequest struct {
	Name             string            `json:"name" binding:"required"`
	Brand            string            `json:"brand" binding:"required"`
	Category         string            `json:"category" binding:"required"`
	Price            *float64          `json:"price" binding:"required"`
	Rating           *float64          `json:"rating"`
	ReviewCount      *int              `json:"reviewCount"`
	Stock            *int              `json:"stock" binding:"required"`
	Images           []string          `json:"images" binding:"required"`
	ShortDescription string            `json:"shortDescription"`
	Description      string            `json:"description" binding:"required"`
	Highlights       []string          `json:"highlights"`
	Specs            map[string]string `json:"specs"`
}

// POST /api/products (admin)
func CreateProduct(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required product fields", "details": err.Error()})
			return
		}
		if *req.Price < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		if *req.Stock < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
			return
		}

		product := models.Product{
			ID:               "p_" + uuid.NewString()[:8],
			Name:             strings.TrimSpace(req.Name),
			Brand:            strings.TrimSpace(req.Brand),
			Category:         strings.TrimSpace(req.Category),
			Price:            *req.Price,
			Rating:           4.5,
			ReviewCount:      0,
			Stock:            *req.Stock,
			Images:           req.Images,
			ShortDescription: req.ShortDescription,
			Description:      req.Description,
			Highlights:       req.Highlights,
			Specs:            req.Specs,
		}
		if req.Rating != nil {
			product.Rating = *req.Rating
		}
		if req.ReviewCount != nil {
			product.ReviewCount = *req.ReviewCount
		}
		if product.Highlights == nil {
			product.Highlights = []string{}
		}
		if product.Specs == nil {
			product.Specs = map[string]string{}
		}

		doc := st.Snapshot()
		doc.Products = append(doc.Products, product)

		if err := st.Submit(doc); err != nil {
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Catalog changed concurrently, please retry"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"product": product})
	}
}
