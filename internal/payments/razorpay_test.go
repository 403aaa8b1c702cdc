package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_secret_key"

func sign(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestRazorpayVerify_ValidSignature(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", testSecret)

	proof := Proof{
		OrderID:   "order_Nxt4QZ",
		PaymentID: "pay_Nxt7Lm",
		Signature: sign("order_Nxt4QZ", "pay_Nxt7Lm", testSecret),
	}
	require.NoError(t, g.Verify(context.Background(), proof))
}

func TestRazorpayVerify_TamperedSignatureRejected(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", testSecret)

	// valid ids, signature computed for a different payment
	proof := Proof{
		OrderID:   "order_Nxt4QZ",
		PaymentID: "pay_Nxt7Lm",
		Signature: sign("order_Nxt4QZ", "pay_other", testSecret),
	}
	assert.ErrorIs(t, g.Verify(context.Background(), proof), ErrVerificationFailed)
}

func TestRazorpayVerify_WrongSecretRejected(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", testSecret)

	proof := Proof{
		OrderID:   "order_Nxt4QZ",
		PaymentID: "pay_Nxt7Lm",
		Signature: sign("order_Nxt4QZ", "pay_Nxt7Lm", "attacker_guess"),
	}
	assert.ErrorIs(t, g.Verify(context.Background(), proof), ErrVerificationFailed)
}

func TestRazorpayVerify_MissingFieldsRejected(t *testing.T) {
	g := NewRazorpayGateway("rzp_test_key", testSecret)
	assert.Error(t, g.Verify(context.Background(), Proof{OrderID: "order_Nxt4QZ"}))
	assert.Error(t, g.Verify(context.Background(), Proof{}))
}
