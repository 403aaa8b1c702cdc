package handlers

import (
	"net/http"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// 🟢 GET /api/admin/users
func AdminListUsers(c *gin.Context) {
	ctx := c.Request.Context()
	cursor, err := database.Mongo.Collection(database.ColUsers).Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load users"})
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// 🟢 DELETE /api/admin/users/:id
func AdminDeleteUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == c.GetString("user_id") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "You cannot delete your own account"})
		return
	}

	res, err := database.Mongo.Collection(database.ColUsers).
		DeleteOne(c.Request.Context(), bson.M{"_id": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete user"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
