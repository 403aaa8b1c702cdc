package handlers

import (
	"errors"
	"net/http"
	"os"

	"aurelia_back_end/internal/models"
	"aurelia_back_end/internal/payments"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 🟢 POST /api/payments/:gateway/initiate
// Opens a payment attempt on the chosen provider for the current cart total.
func InitiatePayment(c *gin.Context) {
	gw, err := Gateways.Get(c.Param("gateway"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment gateway"})
		return
	}

	store, ok := loadCart(c)
	if !ok {
		return
	}

	cartSnapshot := store.Cart()
	if len(cartSnapshot.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}
	if cartSnapshot.TotalPrice <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to pay"})
		return
	}

	reference := "txn_" + uuid.NewString()

	initiation, err := gw.Initiate(c.Request.Context(), payments.InitiateRequest{
		Amount:      cartSnapshot.TotalPrice,
		Currency:    "INR",
		Reference:   reference,
		CallbackURL: os.Getenv("PAYMENT_CALLBACK_URL"),
		Customer: payments.CustomerInfo{
			ID:    sessionID(c),
			Email: cartSnapshot.PersonalInfo.Email,
			Phone: cartSnapshot.PersonalInfo.Phone,
		},
		Metadata: map[string]string{
			"session_id": sessionID(c),
		},
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	_ = store.SetPaymentStatus(c.Request.Context(), models.PaymentPending)

	c.JSON(http.StatusOK, gin.H{
		"reference":  reference,
		"initiation": initiation,
		"amount":     cartSnapshot.TotalPrice,
	})
}

// 🟢 GET /api/payments/:gateway/status/:reference
// The redirect-and-poll flow (PhonePe) lands here. A FAILED response still
// carries the reference so the storefront can retry against the same order.
func PaymentStatus(c *gin.Context) {
	gw, err := Gateways.Get(c.Param("gateway"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment gateway"})
		return
	}

	reference := c.Param("reference")
	status, err := gw.Status(c.Request.Context(), reference)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Status check failed"})
		return
	}

	if store, ok := loadCart(c); ok {
		switch status {
		case payments.StatusCompleted:
			_ = store.SetPaymentStatus(c.Request.Context(), models.PaymentSuccess)
		case payments.StatusFailed:
			_ = store.SetPaymentStatus(c.Request.Context(), models.PaymentFailed)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reference": reference,
		"status":    status,
	})
}

// 🟢 POST /api/payments/:gateway/verify
// The client posts back the provider's proof after a payment attempt. Only a
// verified proof flips the cart to success; a bad signature flips it to
// failed and returns 402 so the storefront shows the retry screen.
func VerifyPayment(c *gin.Context) {
	gw, err := Gateways.Get(c.Param("gateway"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment gateway"})
		return
	}

	var proof payments.Proof
	if err := c.ShouldBindJSON(&proof); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payload"})
		return
	}

	store, ok := loadCart(c)
	if !ok {
		return
	}

	if err := gw.Verify(c.Request.Context(), proof); err != nil {
		_ = store.SetPaymentStatus(c.Request.Context(), models.PaymentFailed)
		if errors.Is(err, payments.ErrVerificationFailed) {
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment verification failed"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Verification unavailable"})
		return
	}

	_ = store.SetPaymentStatus(c.Request.Context(), models.PaymentSuccess)
	c.JSON(http.StatusOK, gin.H{
		"verified":  true,
		"paymentId": proof.PaymentID,
	})
}
