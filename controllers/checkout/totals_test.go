package checkoutControllers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chillapavankarthik-codes/fullstack-sportstore/models"
)

func TestBuildTotals(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  models.Totals
	}{
		{
			name:  "flat shipping below threshold",
			items: []models.OrderItem{{Price: 50, Qty: 2, Subtotal: 100}},
			want:  models.Totals{Subtotal: 100, Shipping: 14.99, Tax: 8, Total: 122.99},
		},
		{
			name:  "free shipping above threshold",
			items: []models.OrderItem{{Price: 50, Qty: 4, Subtotal: 200}},
			want:  models.Totals{Subtotal: 200, Shipping: 0, Tax: 16, Total: 216},
		},
		{
			name:  "no shipping on zero subtotal",
			items: nil,
			want:  models.Totals{Subtotal: 0, Shipping: 0, Tax: 0, Total: 0},
		},
		{
			name: "multiple lines sum before shipping check",
			items: []models.OrderItem{
				{Price: 19.99, Qty: 3, Subtotal: 59.97},
				{Price: 45.5, Qty: 2, Subtotal: 91},
			},
			want: models.Totals{Subtotal: 150.97, Shipping: 0, Tax: 12.08, Total: 163.05},
		},
		{
			name:  "exactly at threshold still pays shipping",
			items: []models.OrderItem{{Price: 150, Qty: 1, Subtotal: 150}},
			want:  models.Totals{Subtotal: 150, Shipping: 14.99, Tax: 12, Total: 176.99},
		},
		{
			name:  "tax rounds to two decimals",
			items: []models.OrderItem{{Price: 10.55, Qty: 1, Subtotal: 10.55}},
			want:  models.Totals{Subtotal: 10.55, Shipping: 14.99, Tax: 0.84, Total: 26.38},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BuildTotals(tt.items))
		})
	}
}

func TestRound2(t *testing.T) {
	require.Equal(t, 0.84, round2(10.55*0.08))
	require.Equal(t, 100.0, round2(50*2.0))
	require.Equal(t, 59.97, round2(19.99*3))
}
