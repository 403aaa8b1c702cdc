package pricing

import (
	"testing"

	"aurelia_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(price float64, qty int) models.CartItem {
	return models.CartItem{ProductID: "p", Price: price, Quantity: qty}
}

func TestSubtotal_OrderIndependent(t *testing.T) {
	a := []models.CartItem{item(199.99, 2), item(50, 1), item(0.01, 3)}
	b := []models.CartItem{a[2], a[0], a[1]}

	require.Equal(t, Subtotal(a), Subtotal(b))
	assert.Equal(t, 450.01, Subtotal(a))
}

func TestCompute_ShippingThreshold(t *testing.T) {
	// exactly 100 still pays shipping, free only above
	at := Compute([]models.CartItem{item(100, 1)}, 0, 0)
	assert.Equal(t, 100.0, at.ShippingPrice)

	above := Compute([]models.CartItem{item(100.01, 1)}, 0, 0)
	assert.Equal(t, 0.0, above.ShippingPrice)

	below := Compute([]models.CartItem{item(99, 1)}, 0, 0)
	assert.Equal(t, 100.0, below.ShippingPrice)
}

func TestCompute_EmptyCartOwesNothing(t *testing.T) {
	// no items means no shipping fee either
	got := Compute(nil, 0, 0)
	assert.Equal(t, Totals{}, got)

	got = Compute([]models.CartItem{}, 0, 0)
	assert.Equal(t, 0.0, got.ShippingPrice)
	assert.Equal(t, 0.0, got.TotalPrice)
}

func TestCompute_Tax(t *testing.T) {
	tt := Compute([]models.CartItem{item(200, 1)}, 0, 0)
	assert.InDelta(t, 0.15*200, tt.TaxPrice, 0.001)
}

func TestCompute_ExampleScenario(t *testing.T) {
	// subtotal 1200 with FIRST500: 1200 + 0 shipping + 180 tax - 500 = 880
	items := []models.CartItem{item(600, 2)}
	subtotal := Subtotal(items)
	require.Equal(t, 1200.0, subtotal)

	got := Compute(items, CouponDiscount("FIRST500", subtotal), 0)
	assert.Equal(t, 1200.0, got.ItemsPrice)
	assert.Equal(t, 0.0, got.ShippingPrice)
	assert.Equal(t, 180.0, got.TaxPrice)
	assert.Equal(t, 880.0, got.TotalPrice)
}

func TestCompute_ClampsAtZero(t *testing.T) {
	// discounts bigger than the payable amount never go negative
	got := Compute([]models.CartItem{item(50, 1)}, 500, 0)
	assert.Equal(t, 0.0, got.TotalPrice)
}

func TestCompute_Rounding(t *testing.T) {
	// 33.33*3 accumulates float error past two decimals
	got := Compute([]models.CartItem{item(33.33, 3)}, 0, 0)
	assert.Equal(t, 99.99, got.ItemsPrice)
}
