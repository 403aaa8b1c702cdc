package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validProductType(t string) bool {
	switch t {
	case models.TypeJewellery, models.TypeSet, models.TypeBangle, models.TypeBead:
		return true
	}
	return false
}

func slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '-'
		}
		return -1
	}, s)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

func productFromForm(c *gin.Context) (models.Product, bool) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	stock, _ := strconv.Atoi(c.PostForm("countInStock"))
	karat, _ := strconv.Atoi(c.PostForm("karat"))
	weight, _ := strconv.ParseFloat(c.PostForm("weightGrams"), 64)
	making, _ := strconv.ParseFloat(c.PostForm("makingChargePct"), 64)
	lines, _ := strconv.Atoi(c.PostForm("inventoryNoOfLine"))

	p := models.Product{
		Name:              c.PostForm("name"),
		Code:              c.PostForm("code"),
		ProductType:       c.PostForm("productType"),
		Material:          c.PostForm("material"),
		Karat:             karat,
		WeightGrams:       weight,
		MakingChargePct:   making,
		Description:       c.PostForm("description"),
		Price:             price,
		BasePrice:         price,
		CountInStock:      stock,
		InventoryNoOfLine: lines,
		IsActive:          c.DefaultPostForm("isActive", "true") == "true",
	}
	if tags := c.PostForm("tags"); tags != "" {
		p.Tags = strings.Split(tags, ",")
	}

	if p.Name == "" || p.Price <= 0 || !validProductType(p.ProductType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, positive price and a valid productType are required"})
		return p, false
	}
	p.Slug = slugify(p.Name)
	return p, true
}

func uploadImages(c *gin.Context) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}

	urls := []string{}
	for _, file := range form.File["images"] {
		url, err := services.UploadFile(file)
		if err != nil {
			log.Printf("⚠️ Image upload failed for %s: %v", file.Filename, err)
			continue
		}
		urls = append(urls, url)
	}
	return urls
}

// 🟢 POST /api/admin/products
func CreateProduct(c *gin.Context) {
	p, ok := productFromForm(c)
	if !ok {
		return
	}
	p.Images = uploadImages(c)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt

	ctx := c.Request.Context()
	col := database.Mongo.Collection(database.ColProducts)

	count, err := col.CountDocuments(ctx, bson.M{"slug": p.Slug})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not check slug"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "A product with this name already exists"})
		return
	}

	res, err := col.InsertOne(ctx, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create product"})
		return
	}
	p.ID = res.InsertedID.(primitive.ObjectID)

	if err := services.IndexProduct(ctx, p); err != nil {
		log.Printf("⚠️ Index failed for %s: %v", p.Slug, err)
	}

	log.Printf("✅ Product created: %s (%s)", p.Name, p.Slug)
	c.JSON(http.StatusCreated, p)
}

// 🟢 PUT /api/admin/products/:id
func UpdateProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	p, ok := productFromForm(c)
	if !ok {
		return
	}

	update := bson.M{
		"name":                 p.Name,
		"slug":                 p.Slug,
		"code":                 p.Code,
		"product_type":         p.ProductType,
		"material":             p.Material,
		"karat":                p.Karat,
		"weight_grams":         p.WeightGrams,
		"making_charge_pct":    p.MakingChargePct,
		"description":          p.Description,
		"price":                p.Price,
		"count_in_stock":       p.CountInStock,
		"inventory_no_of_line": p.InventoryNoOfLine,
		"tags":                 p.Tags,
		"is_active":            p.IsActive,
		"updated_at":           time.Now(),
	}
	if newImages := uploadImages(c); len(newImages) > 0 {
		update["images"] = newImages
	}

	ctx := c.Request.Context()
	col := database.Mongo.Collection(database.ColProducts)

	res, err := col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": update})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update product"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var updated models.Product
	if err := col.FindOne(ctx, bson.M{"_id": oid}).Decode(&updated); err == nil {
		if err := services.IndexProduct(ctx, updated); err != nil {
			log.Printf("⚠️ Reindex failed for %s: %v", updated.Slug, err)
		}
	}

	c.JSON(http.StatusOK, updated)
}

// 🟢 DELETE /api/admin/products/:id
func DeleteProduct(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	ctx := c.Request.Context()
	res, err := database.Mongo.Collection(database.ColProducts).
		DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete product"})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	services.RemoveProduct(ctx, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// 🟢 GET /api/admin/products
// Includes inactive products, unlike the storefront listing.
func AdminListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	cursor, err := database.Mongo.Collection(database.ColProducts).Find(ctx, bson.M{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load products"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode products"})
		return
	}
	c.JSON(http.StatusOK, products)
}
