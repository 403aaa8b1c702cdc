package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const wishlistCacheTTL = 10 * time.Minute

func wishlistCacheKey(userID string) string {
	return "wishlist:" + userID
}

// 🟢 POST /api/wishlist/:productId
// Toggles the product on the user's wishlist. Returns the new state.
func ToggleWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("productId")

	if _, err := primitive.ObjectIDFromHex(productID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx := c.Request.Context()
	col := database.Mongo.Collection(database.ColWishlists)
	filter := bson.M{"user_id": userID, "product_id": productID}

	res, err := col.DeleteOne(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update wishlist"})
		return
	}

	added := false
	if res.DeletedCount == 0 {
		_, err = col.InsertOne(ctx, models.WishlistEntry{
			UserID:    userID,
			ProductID: productID,
			AddedAt:   time.Now(),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update wishlist"})
			return
		}
		added = true
	}

	database.Redis.Del(ctx, wishlistCacheKey(userID))
	c.JSON(http.StatusOK, gin.H{"wishlisted": added})
}

// 🟢 GET /api/wishlist
// Full product documents, cached per user for a few minutes.
func GetWishlist(c *gin.Context) {
	userID := c.GetString("user_id")
	ctx := c.Request.Context()

	if raw, err := database.Redis.Get(ctx, wishlistCacheKey(userID)).Result(); err == nil {
		var cached models.Wishlist
		if json.Unmarshal([]byte(raw), &cached) == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	cursor, err := database.Mongo.Collection(database.ColWishlists).
		Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load wishlist"})
		return
	}
	defer cursor.Close(ctx)

	entries := []models.WishlistEntry{}
	if err := cursor.All(ctx, &entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode wishlist"})
		return
	}

	oids := make([]primitive.ObjectID, 0, len(entries))
	for _, e := range entries {
		if oid, err := primitive.ObjectIDFromHex(e.ProductID); err == nil {
			oids = append(oids, oid)
		}
	}

	products := []models.Product{}
	if len(oids) > 0 {
		pc, err := database.Mongo.Collection(database.ColProducts).
			Find(ctx, bson.M{"_id": bson.M{"$in": oids}, "is_active": true})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load products"})
			return
		}
		defer pc.Close(ctx)
		if err := pc.All(ctx, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode products"})
			return
		}
	}

	wishlist := models.Wishlist{UserID: userID, Items: products}
	if payload, err := json.Marshal(wishlist); err == nil {
		database.Redis.Set(ctx, wishlistCacheKey(userID), payload, wishlistCacheTTL)
	}

	c.JSON(http.StatusOK, wishlist)
}
