package handlers

import (
	"log"
	"net/http"
	"time"

	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func validOrderStatus(s string) bool {
	switch s {
	case models.OrderPlaced, models.OrderProcessing, models.OrderShipped,
		models.OrderDelivered, models.OrderCancelled:
		return true
	}
	return false
}

// 🟢 GET /api/admin/orders
func AdminListOrders(c *gin.Context) {
	filter := bson.M{}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	ctx := c.Request.Context()
	cursor, err := database.Mongo.Collection(database.ColOrders).Find(ctx, filter,
		options.Find().SetSort(bson.M{"created_at": -1}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load orders"})
		return
	}
	defer cursor.Close(ctx)

	orderList := []models.Order{}
	if err := cursor.All(ctx, &orderList); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not decode orders"})
		return
	}
	c.JSON(http.StatusOK, orderList)
}

// 🟢 GET /api/admin/orders/:id
func AdminGetOrder(c *gin.Context) {
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
	c.JSON(http.StatusOK, order)
}

// 🟢 PUT /api/admin/orders/:id/deliver
// Shortcut for the common transition; same path as a status update.
func MarkOrderDelivered(c *gin.Context) {
	applyOrderStatus(c, models.OrderDelivered, "marked delivered")
}

// 🟢 PUT /api/admin/orders/:id/status
// Pushes a status change onto the history. Delivery flips isDelivered, stamps
// deliveredAt, and mails the customer.
func UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
		Note   string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !validOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	applyOrderStatus(c, req.Status, req.Note)
}

func applyOrderStatus(c *gin.Context, status, note string) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	now := time.Now()
	update := bson.M{
		"$set": bson.M{"status": status},
		"$push": bson.M{"status_history": models.StatusEntry{
			Status: status,
			Actor:  c.GetString("email"),
			Note:   note,
			At:     now,
		}},
	}
	if status == models.OrderDelivered {
		update["$set"].(bson.M)["is_delivered"] = true
		update["$set"].(bson.M)["delivered_at"] = now
	}

	ctx := c.Request.Context()
	col := database.Mongo.Collection(database.ColOrders)

	var order models.Order
	err = col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&order)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if status == models.OrderDelivered && order.PersonalInfo.Email != "" {
		go func(o models.Order) {
			if err := utils.SendEmail(o.PersonalInfo.Email,
				"Your order has been delivered",
				utils.GenerateDeliveryHTML(o), nil); err != nil {
				log.Printf("⚠️ Delivery mail failed for %s: %v", o.ID.Hex(), err)
			}
		}(order)
	}

	log.Printf("📦 Order %s moved to %s", order.ID.Hex(), status)
	c.JSON(http.StatusOK, order)
}

// 🟢 GET /api/admin/orders/:id/invoice
// Renders the invoice PDF with a UPI QR for the order total.
func DownloadInvoice(c *gin.Context) {
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

	settings, err := loadSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Store settings unavailable"})
		return
	}

	qr, err := utils.GenerateUPIQR(settings.StoreUPIID, settings.StoreName,
		"ORD-"+order.ID.Hex(), order.TotalPrice)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not build QR"})
		return
	}

	pdf, err := utils.RenderInvoicePDF(utils.GetFrontendInvoiceBaseURL(), order.ID.Hex(), qr)
	if err != nil {
		log.Printf("⚠️ Invoice render failed for %s: %v", order.ID.Hex(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not render invoice"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=invoice_"+order.ID.Hex()+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdf)
}
