package handlers

import (
	"net/http"
	"strconv"
	"time"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/goldprice"
	"aurelia_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 🟢 GET /api/gold-prices
// Live per-gram rates for every stocked karat, served from the Redis cache.
func GetGoldPrices(c *gin.Context) {
	prices := []models.GoldPrice{}
	for _, karat := range goldprice.Karats {
		gp, err := goldprice.Cached(c.Request.Context(), karat)
		if err != nil {
			continue
		}
		prices = append(prices, *gp)
	}

	if len(prices) == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Gold rates unavailable"})
		return
	}
	c.JSON(http.StatusOK, prices)
}

// 🟢 PUT /api/admin/gold-prices/:karat
// Manual rate override when the feed is down or wrong. Writes the doc and
// history, drops the cache so the next read picks up the override.
func AdminSetGoldPrice(c *gin.Context) {
	karat, err := strconv.Atoi(c.Param("karat"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid karat"})
		return
	}

	var req struct {
		Price float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A positive price is required"})
		return
	}

	ctx := c.Request.Context()
	col := database.Mongo.Collection(database.ColGoldPrices)

	var prev models.GoldPrice
	_ = col.FindOne(ctx, bson.M{"_id": karat}).Decode(&prev)

	now := time.Now()
	doc := models.GoldPrice{
		Karat:         karat,
		Price:         req.Price,
		PrevPrice:     prev.Price,
		PercentChange: goldprice.PercentChange(prev.Price, req.Price),
		UpdatedAt:     now,
	}

	_, err = col.ReplaceOne(ctx, bson.M{"_id": karat}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save rate"})
		return
	}
	_, _ = database.Mongo.Collection(database.ColGoldPriceHist).InsertOne(ctx, models.GoldPriceHistory{
		Karat:      karat,
		Price:      req.Price,
		RecordedAt: now,
	})
	database.Redis.Del(ctx, "gold:price:"+strconv.Itoa(karat))

	c.JSON(http.StatusOK, doc)
}

// 🟢 GET /api/gold-prices/history?karat=22&days=30
func GetGoldPriceHistory(c *gin.Context) {
	karat, err := strconv.Atoi(c.DefaultQuery("karat", "24"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid karat"})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	if days < 1 || days > 365 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	ctx := c.Request.Context()
	cursor, err := database.Mongo.Collection(database.ColGoldPriceHist).Find(ctx,
		bson.M{"karat": karat, "recorded_at": bson.M{"$gte": since}},
		options.Find().SetSort(bson.M{"recorded_at": 1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load history"})
		return
	}
	defer cursor.Close(ctx)

	history := []models.GoldPriceHistory{}
	if err := cursor.All(ctx, &history); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode history"})
		return
	}

	c.JSON(http.StatusOK, history)
}
