package goldprice

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/services"

	"github.com/go-resty/resty/v2"
	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const cacheTTL = time.Hour

// feedResponse matches the per-gram INR feed (goldapi.io shape).
type feedResponse struct {
	PriceGram24k float64 `json:"price_gram_24k"`
	PriceGram22k float64 `json:"price_gram_22k"`
	PriceGram18k float64 `json:"price_gram_18k"`
}

// Refresher pulls the live gold rate, records it, and reprices every gold
// product from its weight and karat.
type Refresher struct {
	http *resty.Client
}

func NewRefresher() *Refresher {
	return &Refresher{
		http: resty.New().SetTimeout(15 * time.Second),
	}
}

// Start schedules the refresh twice a day (market open and evening) plus one
// run right away so a fresh deploy never serves stale rates.
func (r *Refresher) Start(c *cron.Cron) {
	if _, err := c.AddFunc("0 10,18 * * *", func() {
		if err := r.Refresh(context.Background()); err != nil {
			log.Printf("⚠️ Gold price refresh failed: %v", err)
		}
	}); err != nil {
		log.Printf("⚠️ Could not schedule gold price refresh: %v", err)
		return
	}

	go func() {
		if err := r.Refresh(context.Background()); err != nil {
			log.Printf("⚠️ Initial gold price refresh failed: %v", err)
		}
	}()
}

// Refresh fetches the feed, updates gold_prices and the history log, caches
// the rates in Redis, and reprices gold products.
func (r *Refresher) Refresh(ctx context.Context) error {
	feedURL := os.Getenv("GOLD_RATE_URL")
	if feedURL == "" {
		return fmt.Errorf("GOLD_RATE_URL not set")
	}

	var feed feedResponse
	resp, err := r.http.R().
		SetContext(ctx).
		SetHeader("x-access-token", os.Getenv("GOLD_RATE_API_KEY")).
		SetResult(&feed).
		Get(feedURL)
	if err != nil {
		return fmt.Errorf("rate feed unreachable: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("rate feed returned %s", resp.Status())
	}
	if feed.PriceGram24k <= 0 {
		return fmt.Errorf("rate feed returned a non-positive 24k rate")
	}

	rates := map[int]float64{
		24: feed.PriceGram24k,
		22: feed.PriceGram22k,
		18: feed.PriceGram18k,
	}
	// derive missing karats from the 24k base
	for _, k := range Karats {
		if rates[k] <= 0 {
			rates[k] = KaratRate(feed.PriceGram24k, k)
		}
	}

	now := time.Now()
	for _, karat := range Karats {
		if err := r.record(ctx, karat, rates[karat], now); err != nil {
			return err
		}
	}

	if err := r.repriceGoldProducts(ctx, feed.PriceGram24k); err != nil {
		return err
	}

	log.Printf("🪙 Gold rates refreshed: 24k=₹%.2f/g 22k=₹%.2f/g 18k=₹%.2f/g", rates[24], rates[22], rates[18])
	return nil
}

func (r *Refresher) record(ctx context.Context, karat int, price float64, now time.Time) error {
	col := database.Mongo.Collection(database.ColGoldPrices)

	var prev models.GoldPrice
	_ = col.FindOne(ctx, bson.M{"_id": karat}).Decode(&prev)

	doc := models.GoldPrice{
		Karat:         karat,
		Price:         price,
		PrevPrice:     prev.Price,
		PercentChange: PercentChange(prev.Price, price),
		UpdatedAt:     now,
	}

	_, err := col.ReplaceOne(ctx, bson.M{"_id": karat}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("gold price upsert: %w", err)
	}

	_, err = database.Mongo.Collection(database.ColGoldPriceHist).InsertOne(ctx, models.GoldPriceHistory{
		Karat:      karat,
		Price:      price,
		RecordedAt: now,
	})
	if err != nil {
		return fmt.Errorf("gold price history insert: %w", err)
	}

	if payload, err := json.Marshal(doc); err == nil {
		key := fmt.Sprintf("gold:price:%d", karat)
		if err := database.Redis.Set(ctx, key, payload, cacheTTL).Err(); err != nil {
			log.Printf("⚠️ Gold price cache write failed: %v", err)
		}
	}
	return nil
}

// repriceGoldProducts recomputes every gold product's price from its weight,
// karat, and making charge, then refreshes the search index.
func (r *Refresher) repriceGoldProducts(ctx context.Context, rate24k float64) error {
	col := database.Mongo.Collection(database.ColProducts)

	cursor, err := col.Find(ctx, bson.M{
		"material":     models.MaterialGold,
		"weight_grams": bson.M{"$gt": 0},
		"karat":        bson.M{"$gt": 0},
	})
	if err != nil {
		return fmt.Errorf("gold product scan: %w", err)
	}
	defer cursor.Close(ctx)

	repriced := 0
	for cursor.Next(ctx) {
		var p models.Product
		if err := cursor.Decode(&p); err != nil {
			continue
		}

		newPrice := ProductPrice(p.WeightGrams, p.Karat, rate24k, p.MakingChargePct)
		if newPrice == p.Price {
			continue
		}

		_, err := col.UpdateOne(ctx, bson.M{"_id": p.ID}, bson.M{"$set": bson.M{
			"price":      newPrice,
			"updated_at": time.Now(),
		}})
		if err != nil {
			log.Printf("⚠️ Reprice failed for %s: %v", p.Slug, err)
			continue
		}

		p.Price = newPrice
		if err := services.IndexProduct(ctx, p); err != nil {
			log.Printf("⚠️ Reindex failed for %s: %v", p.Slug, err)
		}
		repriced++
	}

	if repriced > 0 {
		log.Printf("🪙 Repriced %d gold products", repriced)
	}
	return cursor.Err()
}

// Cached returns the cached rate for one karat, falling back to Mongo when
// the cache is cold.
func Cached(ctx context.Context, karat int) (*models.GoldPrice, error) {
	key := fmt.Sprintf("gold:price:%d", karat)
	if raw, err := database.Redis.Get(ctx, key).Result(); err == nil {
		var gp models.GoldPrice
		if err := json.Unmarshal([]byte(raw), &gp); err == nil {
			return &gp, nil
		}
	}

	var gp models.GoldPrice
	err := database.Mongo.Collection(database.ColGoldPrices).
		FindOne(ctx, bson.M{"_id": karat}).Decode(&gp)
	if err != nil {
		return nil, err
	}
	return &gp, nil
}
