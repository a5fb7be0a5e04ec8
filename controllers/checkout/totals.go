package checkoutControllers

import (
	"math"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
)

const (
	flatShippingFee       = 14.99
	freeShippingThreshold = 150.0
	taxRate               = 0.08
)

// BuildTotals computes order totals from the line items. Shipping is a flat
// fee, waived above the free-shipping threshold and for a zero subtotal.
func BuildTotals(items []models.OrderItem) models.Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Subtotal
	}
	subtotal = round2(subtotal)

	shipping := flatShippingFee
	if subtotal > freeShippingThreshold || subtotal == 0 {
		shipping = 0
	}
	tax := round2(subtotal * taxRate)

	return models.Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    round2(subtotal + shipping + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
