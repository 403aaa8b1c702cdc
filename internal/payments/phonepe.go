package payments

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-resty/resty/v2"
)

const (
	phonePePayPath    = "/pg/v1/pay"
	phonePeStatusPath = "/pg/v1/status"
)

// PhonePeGateway drives the hosted PhonePe page: initiate returns a redirect
// URL, and the outcome is learned by polling the status endpoint after the
// redirect-back. There is no push from the provider in this flow.
type PhonePeGateway struct {
	http       *resty.Client
	merchantID string
	saltKey    string
	saltIndex  string
}

func NewPhonePeGateway(baseURL, merchantID, saltKey, saltIndex string) *PhonePeGateway {
	return &PhonePeGateway{
		http:       resty.New().SetBaseURL(baseURL),
		merchantID: merchantID,
		saltKey:    saltKey,
		saltIndex:  saltIndex,
	}
}

func (g *PhonePeGateway) Name() string { return "phonepe" }

type phonePeInstrumentResponse struct {
	RedirectInfo struct {
		URL string `json:"url"`
	} `json:"redirectInfo"`
}

type phonePeResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    struct {
		MerchantTransactionID string                    `json:"merchantTransactionId"`
		InstrumentResponse    phonePeInstrumentResponse `json:"instrumentResponse"`
	} `json:"data"`
}

func (g *PhonePeGateway) Initiate(ctx context.Context, req InitiateRequest) (*Initiation, error) {
	payload := map[string]interface{}{
		"merchantId":            g.merchantID,
		"merchantTransactionId": req.Reference,
		"merchantUserId":        req.Customer.ID,
		"amount":                int64(math.Round(req.Amount * 100)), // paise
		"redirectUrl":           req.CallbackURL,
		"redirectMode":          "REDIRECT",
		"callbackUrl":           req.CallbackURL,
		"mobileNumber":          req.Customer.Phone,
		"paymentInstrument":     map[string]string{"type": "PAY_PAGE"},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	var out phonePeResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-VERIFY", phonePeChecksum(encoded+phonePePayPath, g.saltKey, g.saltIndex)).
		SetBody(map[string]string{"request": encoded}).
		SetResult(&out).
		ForceContentType("application/json").
		Post(phonePePayPath)
	if err != nil {
		return nil, fmt.Errorf("phonepe pay request: %w", err)
	}
	if resp.IsError() || !out.Success {
		return nil, fmt.Errorf("phonepe pay rejected: %s %s", out.Code, out.Message)
	}

	return &Initiation{
		GatewayOrderID: req.Reference,
		RedirectURL:    out.Data.InstrumentResponse.RedirectInfo.URL,
	}, nil
}

func (g *PhonePeGateway) Status(ctx context.Context, reference string) (Status, error) {
	path := fmt.Sprintf("%s/%s/%s", phonePeStatusPath, g.merchantID, reference)

	var out phonePeResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-MERCHANT-ID", g.merchantID).
		SetHeader("X-VERIFY", phonePeChecksum(path, g.saltKey, g.saltIndex)).
		SetResult(&out).
		ForceContentType("application/json").
		Get(path)
	if err != nil {
		return StatusFailed, fmt.Errorf("phonepe status request: %w", err)
	}
	if resp.IsError() {
		return StatusFailed, fmt.Errorf("phonepe status http %d", resp.StatusCode())
	}

	switch out.Code {
	case "PAYMENT_SUCCESS":
		return StatusCompleted, nil
	case "PAYMENT_PENDING", "PAYMENT_INITIATED":
		return StatusPending, nil
	default:
		return StatusFailed, nil
	}
}

// Verify checks a callback body checksum. proof.Signature carries the
// X-VERIFY header value, proof.PaymentID the base64 response body.
func (g *PhonePeGateway) Verify(_ context.Context, proof Proof) error {
	if proof.Signature == "" || proof.PaymentID == "" {
		return ErrVerificationFailed
	}
	expected := phonePeChecksum(proof.PaymentID, g.saltKey, g.saltIndex)
	if expected != proof.Signature {
		return ErrVerificationFailed
	}
	return nil
}

// phonePeChecksum builds the X-VERIFY value:
// SHA256(data + saltKey) + "###" + saltIndex.
func phonePeChecksum(data, saltKey, saltIndex string) string {
	sum := sha256.Sum256([]byte(data + saltKey))
	return hex.EncodeToString(sum[:]) + "###" + saltIndex
}
