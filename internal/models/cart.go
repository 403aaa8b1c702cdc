package models

// PaymentStatus tracks where a checkout attempt currently stands.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

type CartItem struct {
	ProductID   string  `json:"productId" bson:"product_id"`
	Name        string  `json:"name" bson:"name"`
	Slug        string  `json:"slug" bson:"slug"`
	Image       string  `json:"image" bson:"image"`
	Price       float64 `json:"price" bson:"price"`
	BasePrice   float64 `json:"basePrice" bson:"base_price"`
	Quantity    int     `json:"qty" bson:"qty"`
	ProductType string  `json:"productType" bson:"product_type"`
	Material    string  `json:"material" bson:"material"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName" bson:"full_name"`
	Address    string `json:"address" bson:"address"`
	City       string `json:"city" bson:"city"`
	State      string `json:"state" bson:"state"`
	PostalCode string `json:"postalCode" bson:"postal_code"`
	Country    string `json:"country" bson:"country"`
	Phone      string `json:"phone" bson:"phone"`
}

type PersonalInfo struct {
	Name  string `json:"name" bson:"name"`
	Email string `json:"email" bson:"email"`
	Phone string `json:"phone" bson:"phone"`
}

type GSTDetails struct {
	HasGST    bool   `json:"hasGST" bson:"has_gst"`
	GSTNumber string `json:"gstNumber" bson:"gst_number"`
	Company   string `json:"company" bson:"company"`
}

// Cart is the full session cart snapshot, derived totals included.
// The cart store recomputes the totals on every mutation and persists the
// whole struct as JSON.
type Cart struct {
	Items           []CartItem      `json:"items"`
	ItemsPrice      float64         `json:"itemsPrice"`
	TaxPrice        float64         `json:"taxPrice"`
	ShippingPrice   float64         `json:"shippingPrice"`
	TotalPrice      float64         `json:"totalPrice"`
	CouponCode      string          `json:"couponCode"`
	CouponDiscount  float64         `json:"couponDiscount"`
	DiscountPrice   float64         `json:"discountPrice"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PersonalInfo    PersonalInfo    `json:"personalInfo"`
	GSTDetails      GSTDetails      `json:"gstDetails"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   PaymentStatus   `json:"paymentStatus"`
}
