package handlers

import (
	"net/http"
	"strconv"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 🟢 GET /api/products
// Optional filters: ?type=bangle&material=gold&page=1&limit=20
func GetProducts(c *gin.Context) {
	filter := bson.M{"is_active": true}
	if t := c.Query("type"); t != "" {
		filter["product_type"] = t
	}
	if m := c.Query("material"); m != "" {
		filter["material"] = m
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx := c.Request.Context()
	col := database.Mongo.Collection(database.ColProducts)

	total, err := col.CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not count products"})
		return
	}

	cursor, err := col.Find(ctx, filter, options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64((page-1)*limit)).
		SetLimit(int64(limit)))
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

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"page":     page,
		"total":    total,
	})
}

// 🟢 GET /api/products/:slug
func GetProductBySlug(c *gin.Context) {
	var product models.Product
	err := database.Mongo.Collection(database.ColProducts).
		FindOne(c.Request.Context(), bson.M{"slug": c.Param("slug"), "is_active": true}).
		Decode(&product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// 🟢 GET /api/products/search?q=emerald
// Relevance ordering comes from the search index; documents come from Mongo.
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing query"})
		return
	}

	ctx := c.Request.Context()
	ids, err := services.SearchProducts(ctx, query, 20)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Search unavailable"})
		return
	}
	if len(ids) == 0 {
		c.JSON(http.StatusOK, gin.H{"products": []models.Product{}})
		return
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	cursor, err := database.Mongo.Collection(database.ColProducts).
		Find(ctx, bson.M{"_id": bson.M{"$in": oids}, "is_active": true})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load products"})
		return
	}
	defer cursor.Close(ctx)

	found := []models.Product{}
	if err := cursor.All(ctx, &found); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode products"})
		return
	}

	// restore the index's relevance order
	byID := make(map[string]models.Product, len(found))
	for _, p := range found {
		byID[p.ID.Hex()] = p
	}
	products := make([]models.Product, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			products = append(products, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
