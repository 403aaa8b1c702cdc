package handlers

import (
	"errors"
	"net/http"

	"aurelia_back_end/internal/cart"
	"aurelia_back_end/internal/database"
	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/pricing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// sessionID resolves the cart key: the authenticated user when present,
// otherwise the storefront's session header so guests keep a cart too.
func sessionID(c *gin.Context) string {
	if userID := c.GetString("user_id"); userID != "" {
		return userID
	}
	return c.GetHeader("X-Session-ID")
}

func loadCart(c *gin.Context) (*cart.Store, bool) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing session"})
		return nil, false
	}

	store, err := cart.Load(c.Request.Context(), Carts, sid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart unavailable"})
		return nil, false
	}
	return store, true
}

// 🟢 GET /api/cart
func GetCart(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, store.Cart())
}

// 🟢 POST /api/cart/add
func AddToCart(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	var req struct {
		Slug string `json:"slug"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	var product models.Product
	err := database.Mongo.Collection(database.ColProducts).
		FindOne(c.Request.Context(), bson.M{"slug": req.Slug, "is_active": true}).
		Decode(&product)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	item := models.CartItem{
		ProductID:   product.ID.Hex(),
		Name:        product.Name,
		Slug:        product.Slug,
		Image:       firstImage(product.Images),
		Price:       product.Price,
		BasePrice:   product.BasePrice,
		ProductType: product.ProductType,
		Material:    product.Material,
	}

	if err := store.Increase(c.Request.Context(), item, product.CountInStock); err != nil {
		if errors.Is(err, cart.ErrQuantityExceedsStock) {
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update cart"})
		return
	}

	c.JSON(http.StatusOK, store.Cart())
}

func firstImage(images []string) string {
	if len(images) > 0 {
		return images[0]
	}
	return ""
}

// 🟢 POST /api/cart/decrease/:slug
func DecreaseCartItem(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	if err := store.Decrease(c.Request.Context(), c.Param("slug")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update cart"})
		return
	}
	c.JSON(http.StatusOK, store.Cart())
}

// 🟢 POST /api/cart/coupon
func ApplyCoupon(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	discount, err := store.ApplyCoupon(c.Request.Context(), req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not apply coupon"})
		return
	}

	// the store is a silent no-op for unusable codes; the response says why
	message := "Coupon applied"
	if discount == 0 {
		if pricing.KnownCoupon(req.Code) {
			message = "Cart total is below the coupon minimum"
		} else {
			message = "Unknown coupon code"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"applied":  discount > 0,
		"discount": discount,
		"message":  message,
		"cart":     store.Cart(),
	})
}

// 🟢 DELETE /api/cart/coupon
func RemoveCoupon(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	if err := store.RemoveCoupon(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not remove coupon"})
		return
	}
	c.JSON(http.StatusOK, store.Cart())
}

// 🟢 POST /api/cart/shipping-address
func SaveShippingAddress(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	var addr models.ShippingAddress
	if err := c.ShouldBindJSON(&addr); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if err := store.SaveShippingAddress(c.Request.Context(), addr); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save address"})
		return
	}
	c.JSON(http.StatusOK, store.Cart())
}

// 🟢 POST /api/cart/payment-method
func SavePaymentMethod(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	var req struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Method == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	if _, err := Gateways.Get(req.Method); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment method"})
		return
	}

	if err := store.SavePaymentMethod(c.Request.Context(), req.Method); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save payment method"})
		return
	}
	c.JSON(http.StatusOK, store.Cart())
}

// 🟢 POST /api/cart/personal-info
func SavePersonalInfo(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	var info models.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	if err := store.SavePersonalInfo(c.Request.Context(), info); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save personal info"})
		return
	}
	c.JSON(http.StatusOK, store.Cart())
}

// 🟢 POST /api/cart/gst
func SaveGSTDetails(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	var gst models.GSTDetails
	if err := c.ShouldBindJSON(&gst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}
	if gst.HasGST && gst.GSTNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "GST number required"})
		return
	}

	if err := store.SaveGSTDetails(c.Request.Context(), gst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save GST details"})
		return
	}
	c.JSON(http.StatusOK, store.Cart())
}

// 🟢 DELETE /api/cart
func ClearCart(c *gin.Context) {
	store, ok := loadCart(c)
	if !ok {
		return
	}

	if err := store.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not clear cart"})
		return
	}
	c.JSON(http.StatusOK, store.Cart())
}
