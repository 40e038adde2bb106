package stripe

import (
	"context"
	"errors"
	"fmt"

	stripego "github.com/stripe/stripe-go/v75"
	"github.com/stripe/stripe-go/v75/paymentintent"
)

var ErrNotConfigured = errors.New("stripe key not configured")

type Intent struct {
	ID           string
	ClientSecret string
	Status       string
}

type CreateIntentParams struct {
	Amount      int64 // minor units
	Currency    string
	CartID      string
	Description string
}

// PaymentIntents creates payment intents for checkout.
type PaymentIntents interface {
	Create(ctx context.Context, p CreateIntentParams) (Intent, error)
}

type Client struct {
	api *paymentintent.Client
}

// NewClient returns a client bound to secretKey rather than the package-level
// stripe.Key.
func NewClient(secretKey string) *Client {
	if secretKey == "" {
		return &Client{}
	}
	return &Client{api: &paymentintent.Client{
		B:   stripego.GetBackend(stripego.APIBackend),
		Key: secretKey,
	}}
}

func (c *Client) Create(ctx context.Context, p CreateIntentParams) (Intent, error) {
	if c.api == nil {
		return Intent{}, ErrNotConfigured
	}

	params := &stripego.PaymentIntentParams{
		Amount:   stripego.Int64(p.Amount),
		Currency: stripego.String(p.Currency),
		AutomaticPaymentMethods: &stripego.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripego.Bool(true),
		},
	}
	if p.Description != "" {
		params.Description = stripego.String(p.Description)
	}
	params.Context = ctx
	params.AddMetadata("cart_id", p.CartID)

	pi, err := c.api.New(params)
	if err != nil {
		return Intent{}, fmt.Errorf("create payment intent: %w", err)
	}
	return Intent{ID: pi.ID, ClientSecret: pi.ClientSecret, Status: string(pi.Status)}, nil
}
