// Package paymentprovider abstracts the external checkout provider behind
// a narrow gateway so the checkout service can be tested without Stripe.
package paymentprovider

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when the provider does not know the
// session id.
var ErrSessionNotFound = errors.New("checkout session not found")

// SessionParams describes the checkout session to create.
type SessionParams struct {
	PriceID       string
	CustomerEmail string
	SuccessURL    string
	CancelURL     string
}

// Session is the provider view of a checkout session.
type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	CustomerEmail string
}

// Gateway creates checkout sessions and reports their payment status.
type Gateway interface {
	CreateSession(ctx context.Context, params SessionParams) (*Session, error)
	GetSession(ctx context.Context, sessionID string) (*Session, error)
}
