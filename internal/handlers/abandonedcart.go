package handlers

import (
	"net/http"
	"time"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 🟢 POST /api/abandoned-carts
// The storefront calls this when a checkout stalls (tab close, payment page
// timeout). One unrecovered snapshot per user; a landed order flips it.
func CaptureAbandonedCart(c *gin.Context) {
	userID := c.GetString("user_id")

	store, ok := loadCart(c)
	if !ok {
		return
	}
	snapshot := store.Cart()
	if len(snapshot.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	now := time.Now()
	_, err := database.Mongo.Collection(database.ColAbandonedCarts).UpdateOne(
		c.Request.Context(),
		bson.M{"user_id": userID, "recovered": false},
		bson.M{
			"$set": bson.M{
				"email":      snapshot.PersonalInfo.Email,
				"items":      snapshot.Items,
				"total":      snapshot.TotalPrice,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"user_id":    userID,
				"recovered":  false,
				"created_at": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save cart snapshot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"captured": true})
}

// 🟢 GET /api/admin/abandoned-carts
func AdminListAbandonedCarts(c *gin.Context) {
	filter := bson.M{}
	if c.Query("recovered") == "false" {
		filter["recovered"] = false
	}

	ctx := c.Request.Context()
	cursor, err := database.Mongo.Collection(database.ColAbandonedCarts).Find(ctx, filter,
		options.Find().SetSort(bson.M{"updated_at": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load abandoned carts"})
		return
	}
	defer cursor.Close(ctx)

	carts := []models.AbandonedCart{}
	if err := cursor.All(ctx, &carts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode abandoned carts"})
		return
	}
	c.JSON(http.StatusOK, carts)
}
