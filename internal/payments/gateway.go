// Package payments wraps the three payment providers behind one capability
// interface. The providers keep their own shapes underneath (hosted widget,
// redirect+poll, client-side confirm), but callers only see
// initiate / status / verify.
package payments

import (
	"context"
	"errors"
)

type Status string

const (
	StatusCompleted Status = "COMPLETED"
	StatusPending   Status = "PENDING"
	StatusFailed    Status = "FAILED"
)

var (
	ErrVerificationFailed = errors.New("payment verification failed")
	ErrUnknownGateway     = errors.New("unknown payment gateway")
)

// InitiateRequest carries what every provider needs to open a payment.
// Amount is in rupees; adapters convert to minor units themselves.
type InitiateRequest struct {
	Amount      float64
	Currency    string
	Reference   string // our transaction reference, unique per attempt
	CallbackURL string
	Customer    CustomerInfo
	Metadata    map[string]string
}

type CustomerInfo struct {
	ID    string
	Email string
	Phone string
}

// Initiation is what the storefront needs to continue the payment. Exactly
// one of ClientSecret or RedirectURL is set depending on the provider;
// GatewayOrderID identifies the attempt on the provider side.
type Initiation struct {
	GatewayOrderID string `json:"gatewayOrderId"`
	ClientSecret   string `json:"clientSecret,omitempty"`
	RedirectURL    string `json:"redirectUrl,omitempty"`
	KeyID          string `json:"keyId,omitempty"`
}

// Proof is the evidence a client posts back after a payment attempt.
type Proof struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`
}

type Gateway interface {
	Name() string
	Initiate(ctx context.Context, req InitiateRequest) (*Initiation, error)
	Status(ctx context.Context, reference string) (Status, error)
	Verify(ctx context.Context, proof Proof) error
}

// Registry resolves gateways by their storefront name.
type Registry struct {
	gateways map[string]Gateway
}

func NewRegistry(gws ...Gateway) *Registry {
	r := &Registry{gateways: make(map[string]Gateway, len(gws))}
	for _, gw := range gws {
		r.gateways[gw.Name()] = gw
	}
	return r
}

func (r *Registry) Get(name string) (Gateway, error) {
	gw, ok := r.gateways[name]
	if !ok {
		return nil, ErrUnknownGateway
	}
	return gw, nil
}
