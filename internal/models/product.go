package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product types. Kept as an explicit discriminator on the document so stock
// lookups never have to probe several collections to find the owner.
const (
	TypeJewellery = "jewellery"
	TypeSet       = "set"
	TypeBangle    = "bangle"
	TypeBead      = "bead"
)

// Materials the pricing jobs care about.
const (
	MaterialGold   = "gold"
	MaterialSilver = "silver"
	MaterialBead   = "bead"
)

type Product struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Slug              string             `json:"slug" bson:"slug"`
	Code              string             `json:"code" bson:"code"`
	ProductType       string             `json:"productType" bson:"product_type"`
	Material          string             `json:"material" bson:"material"`
	Karat             int                `json:"karat,omitempty" bson:"karat,omitempty"`
	WeightGrams       float64            `json:"weightGrams,omitempty" bson:"weight_grams,omitempty"`
	MakingChargePct   float64            `json:"makingChargePct,omitempty" bson:"making_charge_pct,omitempty"`
	Description       string             `json:"description" bson:"description"`
	Price             float64            `json:"price" bson:"price"`
	BasePrice         float64            `json:"basePrice" bson:"base_price"`
	CountInStock      int                `json:"countInStock" bson:"count_in_stock"`
	InventoryNoOfLine int                `json:"inventoryNoOfLine,omitempty" bson:"inventory_no_of_line,omitempty"`
	Images            []string           `json:"images" bson:"images"`
	Tags              []string           `json:"tags,omitempty" bson:"tags,omitempty"`
	IsActive          bool               `json:"isActive" bson:"is_active"`
	CreatedAt         time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updated_at"`
}
