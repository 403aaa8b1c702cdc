package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"

	razorpay "github.com/razorpay/razorpay-go"
)

// RazorpayGateway opens a server-side order for the hosted checkout widget
// and verifies the signature the widget hands back.
type RazorpayGateway struct {
	client    *razorpay.Client
	keyID     string
	keySecret string
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keyID:     keyID,
		keySecret: keySecret,
	}
}

func (g *RazorpayGateway) Name() string { return "razorpay" }

func (g *RazorpayGateway) Initiate(_ context.Context, req InitiateRequest) (*Initiation, error) {
	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	data := map[string]interface{}{
		"amount":   int64(math.Round(req.Amount * 100)), // paise
		"currency": currency,
		"receipt":  req.Reference,
		"notes":    req.Metadata,
	}
	order, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create: %w", err)
	}

	orderID, _ := order["id"].(string)
	return &Initiation{GatewayOrderID: orderID, KeyID: g.keyID}, nil
}

// Status fetches the order on the provider side. Razorpay flows normally end
// with Verify, but the polling status page uses this after a redirect-back.
func (g *RazorpayGateway) Status(_ context.Context, reference string) (Status, error) {
	order, err := g.client.Order.Fetch(reference, nil, nil)
	if err != nil {
		return StatusFailed, fmt.Errorf("razorpay order fetch: %w", err)
	}

	switch order["status"] {
	case "paid":
		return StatusCompleted, nil
	case "attempted", "created":
		return StatusPending, nil
	default:
		return StatusFailed, nil
	}
}

// Verify recomputes the checkout signature from order id + payment id with
// the shared secret. Only an exact HMAC match authenticates the payment.
func (g *RazorpayGateway) Verify(_ context.Context, proof Proof) error {
	if proof.OrderID == "" || proof.PaymentID == "" || proof.Signature == "" {
		return ErrVerificationFailed
	}
	if !razorpaySignatureValid(proof.OrderID, proof.PaymentID, proof.Signature, g.keySecret) {
		return ErrVerificationFailed
	}
	return nil
}

func razorpaySignatureValid(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
