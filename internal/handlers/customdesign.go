package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/services"
	"aurelia_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// 🟢 POST /api/custom-designs
// Multipart intake from the made-to-order form. An optional reference image
// goes to MinIO; the admin list gets a mail.
func SubmitCustomDesign(c *gin.Context) {
	design := models.CustomDesign{
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		Description: c.PostForm("description"),
		Material:    c.PostForm("material"),
		Status:      "new",
		CreatedAt:   time.Now(),
	}
	if budget := c.PostForm("budget"); budget != "" {
		design.Budget, _ = strconv.ParseFloat(budget, 64)
	}

	if design.Name == "" || design.Email == "" || design.Description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email and description are required"})
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := services.UploadFile(file)
		if err != nil {
			log.Printf("⚠️ Custom design image upload failed: %v", err)
		} else {
			design.ImageURL = url
		}
	}

	res, err := database.Mongo.Collection(database.ColCustomDesigns).
		InsertOne(c.Request.Context(), design)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save request"})
		return
	}

	go func(d models.CustomDesign) {
		settings, err := loadSettings()
		if err != nil || len(settings.AdminEmails) == 0 {
			return
		}
		if err := utils.SendEmailMany(settings.AdminEmails,
			"New custom design request from "+d.Name,
			utils.GenerateCustomDesignHTML(d)); err != nil {
			log.Printf("⚠️ Custom design mail failed: %v", err)
		}
	}(design)

	c.JSON(http.StatusCreated, gin.H{"id": res.InsertedID, "status": design.Status})
}

// 🟢 GET /api/admin/custom-designs
func ListCustomDesigns(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx := c.Request.Context()
	cursor, err := database.Mongo.Collection(database.ColCustomDesigns).Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load requests"})
		return
	}
	defer cursor.Close(ctx)

	designs := []models.CustomDesign{}
	if err := cursor.All(ctx, &designs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode requests"})
		return
	}
	c.JSON(http.StatusOK, designs)
}
