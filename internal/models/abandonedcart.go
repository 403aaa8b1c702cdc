package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AbandonedCart is a checkout that stalled before payment. Recovered flips to
// true once an order from the same user lands.
type AbandonedCart struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"userId" bson:"user_id"`
	Email     string             `json:"email" bson:"email"`
	Items     []CartItem         `json:"items" bson:"items"`
	Total     float64            `json:"total" bson:"total"`
	Recovered bool               `json:"recovered" bson:"recovered"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}
