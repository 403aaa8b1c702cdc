package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCouponDiscount_First500Boundary(t *testing.T) {
	assert.Equal(t, 500.0, CouponDiscount("FIRST500", 1000))
	assert.Equal(t, 0.0, CouponDiscount("FIRST500", 999))
}

func TestCouponDiscount_Welcome200(t *testing.T) {
	assert.Equal(t, 200.0, CouponDiscount("WELCOME200", 500))
	assert.Equal(t, 0.0, CouponDiscount("WELCOME200", 499.99))
}

func TestCouponDiscount_UnknownCodeIsNoop(t *testing.T) {
	assert.Equal(t, 0.0, CouponDiscount("DIWALI50", 10000))
	assert.False(t, KnownCoupon("DIWALI50"))
	assert.True(t, KnownCoupon("FIRST500"))
}

func TestFlatDiscount(t *testing.T) {
	assert.Equal(t, 0.0, FlatDiscount(2499.99))
	assert.Equal(t, 250.0, FlatDiscount(2500))
	assert.Equal(t, 300.0, FlatDiscount(3000))
}

func TestFlatDiscount_StacksWithCoupon(t *testing.T) {
	subtotal := 3000.0
	coupon := CouponDiscount("FIRST500", subtotal)
	flat := FlatDiscount(subtotal)
	assert.Equal(t, 500.0, coupon)
	assert.Equal(t, 300.0, flat)
}
