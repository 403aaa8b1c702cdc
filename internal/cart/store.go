// Package cart holds the session cart. One Store per session, persisted
// through an injected port so the cart survives reloads without a server
// round-trip per read.
package cart

import (
	"context"
	"errors"

	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/pricing"
)

// Persister saves and loads cart snapshots keyed by session id.
type Persister interface {
	Save(ctx context.Context, sessionID string, c models.Cart) error
	Load(ctx context.Context, sessionID string) (models.Cart, bool, error)
}

var ErrQuantityExceedsStock = errors.New("requested quantity exceeds stock")

// Store wraps one session's cart state. Not safe for concurrent use; each
// request loads its own Store.
type Store struct {
	sessionID string
	persister Persister
	cart      models.Cart
}

// Load returns a Store for the session, reading any persisted snapshot.
// A fresh session starts empty with payment status pending.
func Load(ctx context.Context, p Persister, sessionID string) (*Store, error) {
	c, found, err := p.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !found {
		c = emptyCart()
	}
	return &Store{sessionID: sessionID, persister: p, cart: c}, nil
}

func emptyCart() models.Cart {
	return models.Cart{Items: []models.CartItem{}, PaymentStatus: models.PaymentPending}
}

// Cart returns the current snapshot.
func (s *Store) Cart() models.Cart {
	return s.cart
}

// Increase adds the item at quantity 1 or bumps an existing line, matched by
// slug. stockLimit caps the line; pass a negative limit to skip the check.
func (s *Store) Increase(ctx context.Context, item models.CartItem, stockLimit int) error {
	idx := s.findLine(item.Slug)
	if idx >= 0 {
		if stockLimit >= 0 && s.cart.Items[idx].Quantity+1 > stockLimit {
			return ErrQuantityExceedsStock
		}
		s.cart.Items[idx].Quantity++
	} else {
		if stockLimit == 0 {
			return ErrQuantityExceedsStock
		}
		item.Quantity = 1
		s.cart.Items = append(s.cart.Items, item)
	}
	return s.recompute(ctx)
}

// Decrease decrements the line matched by slug, removing it at zero.
func (s *Store) Decrease(ctx context.Context, slug string) error {
	idx := s.findLine(slug)
	if idx < 0 {
		return nil
	}
	s.cart.Items[idx].Quantity--
	if s.cart.Items[idx].Quantity <= 0 {
		s.cart.Items = append(s.cart.Items[:idx], s.cart.Items[idx+1:]...)
	}
	return s.recompute(ctx)
}

// ApplyCoupon stores the code and recomputes. Unknown codes and unmet
// thresholds leave the totals unchanged; the code is only kept when it
// actually grants a discount.
func (s *Store) ApplyCoupon(ctx context.Context, code string) (float64, error) {
	subtotal := pricing.Subtotal(s.cart.Items)
	discount := pricing.CouponDiscount(code, subtotal)
	if discount == 0 {
		return 0, nil
	}
	s.cart.CouponCode = code
	return discount, s.recompute(ctx)
}

// RemoveCoupon clears the code and both discounts, then recomputes.
func (s *Store) RemoveCoupon(ctx context.Context) error {
	s.cart.CouponCode = ""
	s.cart.CouponDiscount = 0
	s.cart.DiscountPrice = 0
	return s.recompute(ctx)
}

func (s *Store) SaveShippingAddress(ctx context.Context, a models.ShippingAddress) error {
	s.cart.ShippingAddress = a
	return s.recompute(ctx)
}

func (s *Store) SavePaymentMethod(ctx context.Context, method string) error {
	s.cart.PaymentMethod = method
	return s.recompute(ctx)
}

func (s *Store) SavePersonalInfo(ctx context.Context, p models.PersonalInfo) error {
	s.cart.PersonalInfo = p
	return s.recompute(ctx)
}

func (s *Store) SaveGSTDetails(ctx context.Context, g models.GSTDetails) error {
	s.cart.GSTDetails = g
	return s.recompute(ctx)
}

func (s *Store) SetPaymentStatus(ctx context.Context, status models.PaymentStatus) error {
	s.cart.PaymentStatus = status
	return s.persister.Save(ctx, s.sessionID, s.cart)
}

// Clear resets everything except the payment status, so a success page can
// still read the outcome after the cart is emptied.
func (s *Store) Clear(ctx context.Context) error {
	status := s.cart.PaymentStatus
	s.cart = emptyCart()
	s.cart.PaymentStatus = status
	return s.persister.Save(ctx, s.sessionID, s.cart)
}

func (s *Store) findLine(slug string) int {
	for i := range s.cart.Items {
		if s.cart.Items[i].Slug == slug {
			return i
		}
	}
	return -1
}

// recompute derives both discounts and all totals from the current items and
// coupon code, then persists. Deriving rather than caching keeps the cart a
// pure function of (items, code): equal increase/decrease sequences always
// land back on the same totals.
func (s *Store) recompute(ctx context.Context) error {
	subtotal := pricing.Subtotal(s.cart.Items)

	s.cart.CouponDiscount = pricing.CouponDiscount(s.cart.CouponCode, subtotal)
	s.cart.DiscountPrice = pricing.FlatDiscount(subtotal)

	totals := pricing.Compute(s.cart.Items, s.cart.CouponDiscount, s.cart.DiscountPrice)
	s.cart.ItemsPrice = totals.ItemsPrice
	s.cart.ShippingPrice = totals.ShippingPrice
	s.cart.TaxPrice = totals.TaxPrice
	s.cart.TotalPrice = totals.TotalPrice

	return s.persister.Save(ctx, s.sessionID, s.cart)
}
