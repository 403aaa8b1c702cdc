package payments

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhonePeChecksum(t *testing.T) {
	sum := sha256.Sum256([]byte("payload" + "salt"))
	want := hex.EncodeToString(sum[:]) + "###1"
	assert.Equal(t, want, phonePeChecksum("payload", "salt", "1"))
}

func TestPhonePeInitiate_SendsSignedRequest(t *testing.T) {
	var gotVerify string
	var gotBody map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, phonePePayPath, r.URL.Path)
		gotVerify = r.Header.Get("X-VERIFY")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"code":    "PAYMENT_INITIATED",
			"data": map[string]interface{}{
				"merchantTransactionId": "txn-1",
				"instrumentResponse": map[string]interface{}{
					"redirectInfo": map[string]string{"url": "https://pay.phonepe.test/checkout"},
				},
			},
		})
	}))
	defer srv.Close()

	g := NewPhonePeGateway(srv.URL, "MERCHANT1", "salt-key", "1")
	init, err := g.Initiate(context.Background(), InitiateRequest{
		Amount:      880,
		Reference:   "txn-1",
		CallbackURL: "https://shop.test/order/status",
		Customer:    CustomerInfo{ID: "u1", Phone: "9876543210"},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://pay.phonepe.test/checkout", init.RedirectURL)
	assert.Equal(t, "txn-1", init.GatewayOrderID)

	// server-side recomputation of the checksum must match the header
	encoded := gotBody["request"]
	require.NotEmpty(t, encoded)
	assert.Equal(t, phonePeChecksum(encoded+phonePePayPath, "salt-key", "1"), gotVerify)
}

func TestPhonePeStatus_MapsProviderCodes(t *testing.T) {
	code := "PAYMENT_SUCCESS"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "MERCHANT1", r.Header.Get("X-MERCHANT-ID"))
		require.NotEmpty(t, r.Header.Get("X-VERIFY"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "code": code})
	}))
	defer srv.Close()

	g := NewPhonePeGateway(srv.URL, "MERCHANT1", "salt-key", "1")

	got, err := g.Status(context.Background(), "txn-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got)

	code = "PAYMENT_PENDING"
	got, err = g.Status(context.Background(), "txn-1")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got)

	code = "PAYMENT_ERROR"
	got, err = g.Status(context.Background(), "txn-1")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, got)
}

func TestPhonePeStatus_DecodesWithoutJSONContentType(t *testing.T) {
	// some provider edges answer JSON under a text/plain header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "code": "PAYMENT_SUCCESS"})
	}))
	defer srv.Close()

	g := NewPhonePeGateway(srv.URL, "MERCHANT1", "salt-key", "1")
	got, err := g.Status(context.Background(), "txn-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, got)
}

func TestPhonePeVerify_ChecksumMismatchRejected(t *testing.T) {
	g := NewPhonePeGateway("http://unused", "MERCHANT1", "salt-key", "1")

	body := "eyJjb2RlIjoiUEFZTUVOVF9TVUNDRVNTIn0="
	good := Proof{PaymentID: body, Signature: phonePeChecksum(body, "salt-key", "1")}
	require.NoError(t, g.Verify(context.Background(), good))

	bad := Proof{PaymentID: body, Signature: phonePeChecksum(body, "wrong-salt", "1")}
	assert.ErrorIs(t, g.Verify(context.Background(), bad), ErrVerificationFailed)
}
