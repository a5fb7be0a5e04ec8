package checkoutControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	orderControllers "github.com/chillapavankarthik-codes/fullstack-sportstore/controllers/order"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/middleware"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/payments"
	"github.com/chillapavankarthik-codes/fullstack-sportstore/store"
)

// -------- Request Structs --------

type CartLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

type CheckoutRequest struct {
	Items         []CartLine             `json:"items"`
	PaymentMethod string                 `json:"paymentMethod"`
	Shipping      models.ShippingAddress `json:"shipping"`
}

// -------- Errors --------

// ValidationError rejects a checkout before any mutation is prepared. The
// store is guaranteed untouched.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// GatewayError wraps a payment-provider failure. The provider is always
// called before Submit, so the store is guaranteed untouched here too.
type GatewayError struct {
	err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("Stripe checkout creation failed: %v", e.err)
}

func (e *GatewayError) Unwrap() error { return e.err }

// -------- Core Logic --------

// PlaceOrder runs the whole checkout transaction: validate every cart line
// against one snapshot, price each line from that snapshot (never from
// client input), decrement stock in the working copy, append the order and
// submit the combined document as a single write. Any invalid line aborts
// the entire operation with no partial effect. For external payments the
// session is created strictly before Submit, so a provider failure can
// never leave stock decremented without an order or vice versa.
func PlaceOrder(st *store.Store, gateway payments.Gateway, identity models.Identity, req CheckoutRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, &ValidationError{"Cart is empty"}
	}

	method := strings.TrimSpace(req.PaymentMethod)
	if method == "" {
		method = "mock"
	}
	if method == "stripe" && !payments.Configured() {
		return nil, &ValidationError{"Stripe is not configured on server"}
	}

	doc := st.Snapshot()

	// Validate and decrement against the working copy as we go, so repeated
	// lines for the same product cannot drive stock negative.
	items := make([]models.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product := doc.Product(line.ProductID)
		if product == nil || line.Qty <= 0 || line.Qty > product.Stock {
			return nil, &ValidationError{"Invalid cart or insufficient stock"}
		}
		product.Stock -= line.Qty

		item := models.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       line.Qty,
			Subtotal:  round2(product.Price * float64(line.Qty)),
		}
		if len(product.Images) > 0 {
			item.Image = product.Images[0]
		}
		if len(product.Images) > 1 {
			item.BackupImage = product.Images[1]
		}
		items = append(items, item)
	}

	order := models.Order{
		ID:            generateOrderID(),
		UserID:        identity.ID,
		UserName:      identity.Name,
		CreatedAt:     time.Now().UTC(),
		PaymentMethod: method,
		PaymentStatus: models.PaymentStatusPaid,
		Status:        models.OrderStatusProcessing,
		Shipping:      req.Shipping,
		Items:         items,
		Totals:        BuildTotals(items),
	}

	if method == "stripe" {
		session, err := gateway.CreateSession(order)
		if err != nil {
			return nil, &GatewayError{err}
		}
		order.StripeSessionID = session.ID
		order.PaymentStatus = models.PaymentStatusRequiresAction
		order.CheckoutURL = session.URL
	}

	// Newest orders first, matching the listing endpoints.
	doc.Orders = append([]models.Order{order}, doc.Orders...)

	if err := st.Submit(doc); err != nil {
		return nil, err
	}
	return &order, nil
}

func generateOrderID() string {
	return "ORD-" + time.Now().Format("20060102150405") + "-" + uuid.NewString()[:8]
}

// -------- Handler --------

// POST /api/checkout
func Checkout(st *store.Store, gateway payments.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := middleware.Identity(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
			return
		}

		placed, err := PlaceOrder(st, gateway, identity, req)
		if err != nil {
			var ve *ValidationError
			var ge *GatewayError
			switch {
			case errors.As(err, &ve):
				c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
			case errors.As(err, &ge):
				c.JSON(http.StatusBadGateway, gin.H{"error": ge.Error()})
			case errors.Is(err, store.ErrConflict):
				c.JSON(http.StatusConflict, gin.H{"error": "Stock changed while placing the order, please retry"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			}
			return
		}

		orderControllers.BroadcastNewOrder(*placed)
		c.JSON(http.StatusCreated, gin.H{"order": placed})
	}
}
