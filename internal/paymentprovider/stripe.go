package paymentprovider

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// SetKey configures the Stripe SDK key once during bootstrap.
func SetKey(key string) { stripe.Key = key }

// StripeGateway is the Stripe SDK-backed implementation of Gateway.
type StripeGateway struct{}

// NewStripeGateway returns a Gateway backed by the official Stripe SDK.
func NewStripeGateway() *StripeGateway { return &StripeGateway{} }

// CreateSession creates a subscription checkout session and returns its
// id and hosted payment page URL.
func (g *StripeGateway) CreateSession(_ context.Context, params SessionParams) (*Session, error) {
	const op = "paymentprovider.CreateSession"

	s, err := session.New(&stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(params.CustomerEmail),
		SuccessURL:    stripe.String(params.SuccessURL),
		CancelURL:     stripe.String(params.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(params.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Session{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		CustomerEmail: s.CustomerEmail,
	}, nil
}

// GetSession fetches a checkout session by id.
func (g *StripeGateway) GetSession(_ context.Context, sessionID string) (*Session, error) {
	const op = "paymentprovider.GetSession"

	s, err := session.Get(sessionID, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Session{
		ID:            s.ID,
		URL:           s.URL,
		PaymentStatus: string(s.PaymentStatus),
		CustomerEmail: s.CustomerEmail,
	}, nil
}
