package handlers

import (
	"errors"
	"net/http"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/orders"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// 🟢 POST /api/orders
// Reconciles a confirmed payment into an order. Safe to call repeatedly with
// the same payment intent: the first call creates, the rest return the same
// order.
func CreateOrder(c *gin.Context) {
	var req orders.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	req.UserID = c.GetString("user_id")

	order, created, err := OrderService.Create(c.Request.Context(), req)
	switch {
	case errors.Is(err, orders.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, orders.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, orders.ErrPaymentInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": "Order creation already in progress"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create order"})
		return
	}

	// clear the cart once the order is in
	if created {
		if store, ok := loadCart(c); ok {
			_ = store.Clear(c.Request.Context())
		}
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, order)
}

// 🟢 GET /api/orders/mine
func GetMyOrders(c *gin.Context) {
	userID := c.GetString("user_id")

	cursor, err := database.Mongo.Collection(database.ColOrders).Find(
		c.Request.Context(),
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.M{"created_at": -1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load orders"})
		return
	}
	defer cursor.Close(c.Request.Context())

	orderList := []models.Order{}
	if err := cursor.All(c.Request.Context(), &orderList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode orders"})
		return
	}

	c.JSON(http.StatusOK, orderList)
}

// 🟢 GET /api/orders/:id
func GetOrderByID(c *gin.Context) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var order models.Order
	err = database.Mongo.Collection(database.ColOrders).
		FindOne(c.Request.Context(), bson.M{"_id": oid}).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	// customers only see their own orders; admins see all
	if role, _ := c.Get("role"); role != "admin" && order.UserID != c.GetString("user_id") {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
