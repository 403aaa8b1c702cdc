package models

import "time"

type WishlistEntry struct {
	UserID    string    `json:"userId" bson:"user_id"`
	ProductID string    `json:"productId" bson:"product_id"`
	AddedAt   time.Time `json:"addedAt" bson:"added_at"`
}

type Wishlist struct {
	UserID string    `json:"userId"`
	Items  []Product `json:"items"`
}
