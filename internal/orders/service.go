// Package orders owns checkout reconciliation: turning a verified payment
// into exactly one persisted order with stock decremented, whichever client
// page happens to report the success first.
package orders

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"aurelia_back_end/internal/models"
)

var (
	ErrValidation        = errors.New("missing required order fields")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPaymentInFlight   = errors.New("payment is already being reconciled")
)

// OrderStore persists orders. FindByPaymentIntent returning (nil, nil) means
// no order exists for that intent yet.
type OrderStore interface {
	Insert(ctx context.Context, o *models.Order) error
	FindByPaymentIntent(ctx context.Context, intentID string) (*models.Order, error)
	Delete(ctx context.Context, id string) error
}

// StockStore decrements and restores product stock. Decrement must be
// conditional: it fails with ErrInsufficientStock instead of ever driving a
// count negative, and for bead products it moves both countInStock and
// inventory_no_of_line together.
type StockStore interface {
	Decrement(ctx context.Context, item models.OrderItem) error
	Restore(ctx context.Context, item models.OrderItem) error
}

// IntentLocker serializes reconciliation attempts per payment intent.
type IntentLocker interface {
	Acquire(ctx context.Context, intentID string) (bool, error)
	Release(ctx context.Context, intentID string)
}

// AbandonedCartStore flips a user's abandoned carts to recovered.
type AbandonedCartStore interface {
	MarkRecovered(ctx context.Context, userID string) error
}

// Mailer sends the confirmation to the customer and the admin list.
// Implementations must never block reconciliation; failures are logged only.
type Mailer interface {
	SendOrderConfirmation(order models.Order)
}

type Service struct {
	Orders         OrderStore
	Stock          StockStore
	Locks          IntentLocker
	AbandonedCarts AbandonedCartStore
	Mail           Mailer
}

// CreateRequest is the order submission from any success/status page.
type CreateRequest struct {
	UserID          string                 `json:"userId"`
	Items           []models.OrderItem     `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	ItemsPrice      float64                `json:"itemsPrice"`
	TaxPrice        float64                `json:"taxPrice"`
	ShippingPrice   float64                `json:"shippingPrice"`
	CouponCode      string                 `json:"couponCode"`
	CouponDiscount  float64                `json:"couponDiscount"`
	DiscountPrice   float64                `json:"discountPrice"`
	ShippingAddress models.ShippingAddress `json:"shippingAddress"`
	PersonalInfo    models.PersonalInfo    `json:"personalInfo"`
	GSTDetails      models.GSTDetails      `json:"gstDetails"`
	PaymentMethod   string                 `json:"paymentMethod"`
	PaymentIntentID string                 `json:"paymentIntentId"`
}

func (r *CreateRequest) validate() error {
	switch {
	case len(r.Items) == 0:
		return fmt.Errorf("%w: items", ErrValidation)
	case r.TotalAmount <= 0:
		return fmt.Errorf("%w: totalAmount", ErrValidation)
	case r.ShippingAddress.Address == "" || r.ShippingAddress.City == "":
		return fmt.Errorf("%w: shippingAddress", ErrValidation)
	case r.PersonalInfo.Name == "" || r.PersonalInfo.Email == "":
		return fmt.Errorf("%w: personalInfo", ErrValidation)
	case r.GSTDetails.HasGST && r.GSTDetails.GSTNumber == "":
		return fmt.Errorf("%w: gstDetails", ErrValidation)
	case r.PaymentIntentID == "":
		return fmt.Errorf("%w: paymentIntentId", ErrValidation)
	}
	return nil
}

// Create reconciles one successful payment into one order. Safe to call from
// every client entry point: the intent lock plus the unique index on
// paymentIntentId make retries return the already-created order instead of a
// duplicate.
//
// The bool result is true when this call created the order.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*models.Order, bool, error) {
	if err := req.validate(); err != nil {
		return nil, false, err
	}

	// Fast path: the order already exists, hand it back.
	if existing, err := s.Orders.FindByPaymentIntent(ctx, req.PaymentIntentID); err != nil {
		return nil, false, err
	} else if existing != nil {
		log.Printf("🔁 Order for intent %s already exists, returning it", req.PaymentIntentID)
		return existing, false, nil
	}

	acquired, err := s.Locks.Acquire(ctx, req.PaymentIntentID)
	if err != nil {
		return nil, false, err
	}
	if !acquired {
		// A concurrent request holds the lock. It either finishes and the
		// retry finds the order, or it failed and the lock expires.
		if existing, err := s.Orders.FindByPaymentIntent(ctx, req.PaymentIntentID); err == nil && existing != nil {
			return existing, false, nil
		}
		return nil, false, ErrPaymentInFlight
	}
	defer s.Locks.Release(ctx, req.PaymentIntentID)

	now := time.Now()
	order := &models.Order{
		UserID:          req.UserID,
		Items:           req.Items,
		ShippingAddress: req.ShippingAddress,
		PersonalInfo:    req.PersonalInfo,
		GSTDetails:      req.GSTDetails,
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   models.PaymentSuccess,
		PaymentIntentID: req.PaymentIntentID,
		ItemsPrice:      req.ItemsPrice,
		TaxPrice:        req.TaxPrice,
		ShippingPrice:   req.ShippingPrice,
		CouponCode:      req.CouponCode,
		CouponDiscount:  req.CouponDiscount,
		DiscountPrice:   req.DiscountPrice,
		TotalPrice:      req.TotalAmount,
		Status:          models.OrderPlaced,
		StatusHistory: []models.StatusEntry{{
			Status: models.OrderPlaced,
			Actor:  "system",
			Note:   "payment confirmed via " + req.PaymentMethod,
			At:     now,
		}},
		CreatedAt: now,
	}

	if err := s.decrementStock(ctx, req.Items); err != nil {
		return nil, false, err
	}

	if err := s.Orders.Insert(ctx, order); err != nil {
		s.restoreStock(ctx, req.Items)
		return nil, false, err
	}

	if req.UserID != "" && s.AbandonedCarts != nil {
		if err := s.AbandonedCarts.MarkRecovered(ctx, req.UserID); err != nil {
			log.Printf("⚠️ Failed to mark abandoned carts recovered for %s: %v", req.UserID, err)
		}
	}

	if s.Mail != nil {
		s.Mail.SendOrderConfirmation(*order)
	}

	log.Printf("✅ Order created for intent %s (%d items, ₹%.2f)",
		req.PaymentIntentID, len(order.Items), order.TotalPrice)
	return order, true, nil
}

// decrementStock walks the items with conditional updates, undoing every
// applied decrement if any later item comes up short. Either all lines are
// decremented or none stay decremented.
func (s *Service) decrementStock(ctx context.Context, items []models.OrderItem) error {
	done := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if err := s.Stock.Decrement(ctx, item); err != nil {
			s.restoreStock(ctx, done)
			if errors.Is(err, ErrInsufficientStock) {
				return fmt.Errorf("%w for %q", ErrInsufficientStock, item.Name)
			}
			return err
		}
		done = append(done, item)
	}
	return nil
}

func (s *Service) restoreStock(ctx context.Context, items []models.OrderItem) {
	for _, item := range items {
		if err := s.Stock.Restore(ctx, item); err != nil {
			log.Printf("❌ Stock restore failed for %s x%d: %v", item.ProductID, item.Quantity, err)
		}
	}
}
