package payments

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/paymentintent"
)

// StripeGateway creates a PaymentIntent for the embedded card element. The
// client-side confirmation result is authoritative for this flow, so Verify
// re-reads the intent server-side and checks it actually succeeded.
type StripeGateway struct{}

func NewStripeGateway(secretKey string) *StripeGateway {
	stripe.Key = secretKey
	return &StripeGateway{}
}

func (g *StripeGateway) Name() string { return "stripe" }

func (g *StripeGateway) Initiate(_ context.Context, req InitiateRequest) (*Initiation, error) {
	currency := req.Currency
	if currency == "" {
		currency = "inr"
	}

	metadata := map[string]string{"reference": req.Reference}
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(math.Round(req.Amount * 100))),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		Metadata: metadata,
	}
	if req.Customer.Email != "" {
		params.ReceiptEmail = stripe.String(req.Customer.Email)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent: %w", err)
	}

	return &Initiation{GatewayOrderID: intent.ID, ClientSecret: intent.ClientSecret}, nil
}

func (g *StripeGateway) Status(_ context.Context, reference string) (Status, error) {
	intent, err := paymentintent.Get(reference, nil)
	if err != nil {
		return StatusFailed, fmt.Errorf("stripe intent fetch: %w", err)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		return StatusCompleted, nil
	case stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresPaymentMethod:
		return StatusPending, nil
	default:
		return StatusFailed, nil
	}
}

func (g *StripeGateway) Verify(ctx context.Context, proof Proof) error {
	status, err := g.Status(ctx, proof.PaymentID)
	if err != nil {
		return err
	}
	if status != StatusCompleted {
		return ErrVerificationFailed
	}
	return nil
}
