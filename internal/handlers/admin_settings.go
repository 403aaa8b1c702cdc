package handlers

import (
	"context"
	"net/http"
	"time"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const settingsKey = "settings"

func loadSettings() (*models.AdminSettings, error) {
	var settings models.AdminSettings
	err := database.Mongo.Collection(database.ColAdminSettings).
		FindOne(context.Background(), bson.M{"_id": settingsKey}).Decode(&settings)
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// 🟢 GET /api/admin/settings
func GetSettings(c *gin.Context) {
	settings, err := loadSettings()
	if err != nil {
		// first boot: hand back defaults instead of a 404
		c.JSON(http.StatusOK, models.AdminSettings{Key: settingsKey})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// 🟢 PUT /api/admin/settings
func UpdateSettings(c *gin.Context) {
	var req models.AdminSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	req.Key = settingsKey
	req.UpdatedAt = time.Now()

	_, err := database.Mongo.Collection(database.ColAdminSettings).ReplaceOne(
		c.Request.Context(),
		bson.M{"_id": settingsKey},
		req,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save settings"})
		return
	}
	c.JSON(http.StatusOK, req)
}
