package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem freezes the product details at order time. Later price or name
// changes on the product never touch past orders.
type OrderItem struct {
	ProductID   string  `json:"productId" bson:"product_id"`
	Name        string  `json:"name" bson:"name"`
	Slug        string  `json:"slug" bson:"slug"`
	Image       string  `json:"image" bson:"image"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int     `json:"qty" bson:"qty"`
	ProductType string  `json:"productType" bson:"product_type"`
	Material    string  `json:"material" bson:"material"`
}

type StatusEntry struct {
	Status string    `json:"status" bson:"status"`
	Actor  string    `json:"actor" bson:"actor"`
	Note   string    `json:"note" bson:"note"`
	At     time.Time `json:"at" bson:"at"`
}

type Order struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID          string             `json:"userId" bson:"user_id,omitempty"` // empty for guest checkout
	Items           []OrderItem        `json:"items" bson:"items"`
	ShippingAddress ShippingAddress    `json:"shippingAddress" bson:"shipping_address"`
	PersonalInfo    PersonalInfo       `json:"personalInfo" bson:"personal_info"`
	GSTDetails      GSTDetails         `json:"gstDetails" bson:"gst_details"`
	PaymentMethod   string             `json:"paymentMethod" bson:"payment_method"`
	PaymentStatus   PaymentStatus      `json:"paymentStatus" bson:"payment_status"`
	PaymentIntentID string             `json:"paymentIntentId" bson:"payment_intent_id"`
	ItemsPrice      float64            `json:"itemsPrice" bson:"items_price"`
	TaxPrice        float64            `json:"taxPrice" bson:"tax_price"`
	ShippingPrice   float64            `json:"shippingPrice" bson:"shipping_price"`
	CouponCode      string             `json:"couponCode" bson:"coupon_code,omitempty"`
	CouponDiscount  float64            `json:"couponDiscount" bson:"coupon_discount"`
	DiscountPrice   float64            `json:"discountPrice" bson:"discount_price"`
	TotalPrice      float64            `json:"totalPrice" bson:"total_price"`
	Status          string             `json:"status" bson:"status"`
	StatusHistory   []StatusEntry      `json:"statusHistory" bson:"status_history"`
	IsDelivered     bool               `json:"isDelivered" bson:"is_delivered"`
	DeliveredAt     *time.Time         `json:"deliveredAt,omitempty" bson:"delivered_at,omitempty"`
	CreatedAt       time.Time          `json:"createdAt" bson:"created_at"`
}

// Order lifecycle statuses pushed onto StatusHistory.
const (
	OrderPlaced     = "placed"
	OrderProcessing = "processing"
	OrderShipped    = "shipped"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)
