// Package pricing computes cart totals and applies the storefront's discount
// rules. Everything here is pure; persistence and HTTP live elsewhere.
package pricing

import (
	"math"

	"aurelia_back_end/internal/models"
)

// Flat GST surcharge applied on the item subtotal.
const TaxRate = 0.15

// Shipping is free above this subtotal, otherwise a flat ₹100.
const (
	FreeShippingAbove = 100.0
	FlatShippingFee   = 100.0
)

// Totals is the computed price breakdown for a cart.
type Totals struct {
	ItemsPrice     float64
	ShippingPrice  float64
	TaxPrice       float64
	CouponDiscount float64
	DiscountPrice  float64
	TotalPrice     float64
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Subtotal sums price×qty over the items, rounded to two decimals.
func Subtotal(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return round2(sum)
}

// Compute derives the full breakdown for the given items and discounts.
// The total is clamped at zero: stacked discounts can exceed the payable
// amount on small carts and we never charge a negative total.
// An empty cart owes nothing, shipping included.
func Compute(items []models.CartItem, couponDiscount, discountPrice float64) Totals {
	if len(items) == 0 {
		return Totals{}
	}

	itemsPrice := Subtotal(items)

	shipping := FlatShippingFee
	if itemsPrice > FreeShippingAbove {
		shipping = 0
	}

	tax := round2(TaxRate * itemsPrice)

	total := round2(itemsPrice + shipping + tax - couponDiscount - discountPrice)
	if total < 0 {
		total = 0
	}

	return Totals{
		ItemsPrice:     itemsPrice,
		ShippingPrice:  shipping,
		TaxPrice:       tax,
		CouponDiscount: couponDiscount,
		DiscountPrice:  discountPrice,
		TotalPrice:     total,
	}
}
