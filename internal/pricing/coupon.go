package pricing

// couponRule grants a fixed amount off once the subtotal reaches the
// threshold.
type couponRule struct {
	MinSubtotal float64
	Amount      float64
}

// The live coupon table. Codes are uppercase.
var couponRules = map[string]couponRule{
	"FIRST500":   {MinSubtotal: 1000, Amount: 500},
	"WELCOME200": {MinSubtotal: 500, Amount: 200},
}

// Automatic flat discount: 10% off whenever the subtotal reaches ₹2500.
// Stacks with any coupon.
const (
	flatDiscountAbove = 2500.0
	flatDiscountRate  = 0.10
)

// CouponDiscount returns the fixed discount for a code at the given subtotal.
// Unknown codes and unmet thresholds yield zero, not an error.
func CouponDiscount(code string, subtotal float64) float64 {
	rule, ok := couponRules[code]
	if !ok || subtotal < rule.MinSubtotal {
		return 0
	}
	return rule.Amount
}

// FlatDiscount returns the automatic percentage discount for the subtotal.
func FlatDiscount(subtotal float64) float64 {
	if subtotal < flatDiscountAbove {
		return 0
	}
	return round2(subtotal * flatDiscountRate)
}

// KnownCoupon reports whether the code exists in the rule table at all,
// regardless of threshold. Handlers use it to word their response.
func KnownCoupon(code string) bool {
	_, ok := couponRules[code]
	return ok
}
