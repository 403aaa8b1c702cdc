package models

import "time"

// GoldPrice is the live per-gram rate for one karat, keyed by karat in the
// gold_prices collection. PrevPrice and PercentChange let the storefront show
// the day-over-day movement without a second query.
type GoldPrice struct {
	Karat         int       `json:"karat" bson:"_id"`
	Price         float64   `json:"price" bson:"price"`
	PrevPrice     float64   `json:"prevPrice" bson:"prev_price"`
	PercentChange float64   `json:"percentChange" bson:"percent_change"`
	UpdatedAt     time.Time `json:"updatedAt" bson:"updated_at"`
}

// GoldPriceHistory is an append-only log of every refresh, one row per karat.
type GoldPriceHistory struct {
	Karat      int       `json:"karat" bson:"karat"`
	Price      float64   `json:"price" bson:"price"`
	RecordedAt time.Time `json:"recordedAt" bson:"recorded_at"`
}
