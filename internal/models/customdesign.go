package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomDesign is a made-to-order intake request from the storefront form.
type CustomDesign struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Phone       string             `json:"phone" bson:"phone"`
	Description string             `json:"description" bson:"description"`
	Material    string             `json:"material" bson:"material"`
	Budget      float64            `json:"budget,omitempty" bson:"budget,omitempty"`
	ImageURL    string             `json:"imageUrl,omitempty" bson:"image_url,omitempty"`
	Status      string             `json:"status" bson:"status"` // "new", "in_review", "quoted", "closed"
	CreatedAt   time.Time          `json:"createdAt" bson:"created_at"`
}
