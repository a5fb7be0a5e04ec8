package models

import "time"

type OrderStatus string
type PaymentStatus string

const (
	// Order statuses (fulfillment flow)
	OrderStatusProcessing OrderStatus = "Processing" // order placed, being prepared
	OrderStatusShipped    OrderStatus = "Shipped"    // out for delivery
	OrderStatusDelivered  OrderStatus = "Delivered"  // customer received the items
	OrderStatusCancelled  OrderStatus = "Cancelled"  // cancelled before shipping

	// Payment statuses
	PaymentStatusPending        PaymentStatus = "pending"         // payment not completed yet
	PaymentStatusPaid           PaymentStatus = "paid"            // payment completed
	PaymentStatusRequiresAction PaymentStatus = "requires_action" // waiting on the hosted payment page
	PaymentStatusFailed         PaymentStatus = "failed"          // payment attempt failed
)

// ShippingAddress is captured verbatim at checkout and kept on the order.
type ShippingAddress struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// OrderItem freezes the product's name, price and image at order-creation
// time. Later product edits must never change historical orders.
type OrderItem struct {
	ProductID   string  `json:"productId"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Qty         int     `json:"qty"`
	Subtotal    float64 `json:"subtotal"`
	Image       string  `json:"image"`
	BackupImage string  `json:"backupImage,omitempty"`
}

// Totals are computed once at checkout and are never recomputed after the
// order is persisted.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	UserName        string          `json:"userName"`
	CreatedAt       time.Time       `json:"createdAt"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
	StripeSessionID string          `json:"stripeSessionId,omitempty"`
	CheckoutURL     string          `json:"checkoutUrl,omitempty"`
	Status          OrderStatus     `json:"status"`
	Shipping        ShippingAddress `json:"shipping"`
	Items           []OrderItem     `json:"items"`
	Totals          Totals          `json:"totals"`
}

// Clone deep-copies the order.
func (o Order) Clone() Order {
	next := o
	next.Items = append([]OrderItem(nil), o.Items...)
	return next
}
