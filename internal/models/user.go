package models

import "time"

type User struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password,omitempty"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Role      string    `json:"role" bson:"role"` // "customer" or "admin"
	Provider  string    `json:"provider" bson:"provider"`
	AvatarURL string    `json:"avatarUrl,omitempty" bson:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
