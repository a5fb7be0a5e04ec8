package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/middleware"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// -------- Request Structs --------

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(models.OrderStatusProcessing)):
		return models.OrderStatusProcessing, nil
	case strings.ToLower(string(models.OrderStatusShipped)):
		return models.OrderStatusShipped, nil
	case strings.ToLower(string(models.OrderStatusDelivered)):
		return models.OrderStatusDelivered, nil
	case strings.ToLower(string(models.OrderStatusCancelled)):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// -------- Handlers --------

// GET /api/orders
//
// Admins see every order; everyone else sees only their own. Orders are
// stored newest first.
func GetOrders(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.Identity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		doc := st.Snapshot()
		if identity.IsAdmin {
			c.JSON(http.StatusOK, gin.H{"orders": doc.Orders})
			return
		}

		orders := make([]models.Order, 0)
		for _, o := range doc.Orders {
			if o.UserID == identity.ID {
				orders = append(orders, o)
			}
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// PUT /api/orders/:id/status
//
// The only mutation an order sees after creation: an admin moving it
// through the fulfillment flow. Items and totals stay frozen.
func UpdateOrderStatus(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
			return
		}

		status, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		doc := st.Snapshot()
		order := doc.Order(c.Param("id"))
		if order == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		order.Status = status

		if err := st.Submit(doc); err != nil {
			if errors.Is(err, store.ErrConflict) {
				c.JSON(http.StatusConflict, gin.H{"error": "Order changed concurrently, please retry"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}
