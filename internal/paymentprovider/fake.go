package paymentprovider

import (
	"context"
	"fmt"
	"sync"
)

// FakeGateway is an in-memory Gateway used in tests and local runs
// without Stripe credentials. Sessions start unpaid; MarkPaid flips them.
type FakeGateway struct {
	mu       sync.Mutex
	sessions map[string]*Session
	counter  int

	// CreateErr, when set, is returned by CreateSession.
	CreateErr error
	// GetErr, when set, is returned by GetSession.
	GetErr error
}

// NewFakeGateway returns an empty FakeGateway.
func NewFakeGateway() *FakeGateway {
	return &FakeGateway{sessions: make(map[string]*Session)}
}

// CreateSession registers an unpaid session with a synthetic URL.
func (g *FakeGateway) CreateSession(_ context.Context, params SessionParams) (*Session, error) {
	if g.CreateErr != nil {
		return nil, g.CreateErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	id := fmt.Sprintf("cs_test_%d", g.counter)
	s := &Session{
		ID:            id,
		URL:           "https://checkout.example.com/pay/" + id,
		PaymentStatus: "unpaid",
		CustomerEmail: params.CustomerEmail,
	}
	g.sessions[id] = s
	return &Session{ID: s.ID, URL: s.URL, PaymentStatus: s.PaymentStatus, CustomerEmail: s.CustomerEmail}, nil
}

// GetSession returns the stored session state.
func (g *FakeGateway) GetSession(_ context.Context, sessionID string) (*Session, error) {
	if g.GetErr != nil {
		return nil, g.GetErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &Session{ID: s.ID, URL: s.URL, PaymentStatus: s.PaymentStatus, CustomerEmail: s.CustomerEmail}, nil
}

// MarkPaid flips a session to paid.
func (g *FakeGateway) MarkPaid(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if s, ok := g.sessions[sessionID]; ok {
		s.PaymentStatus = "paid"
	}
}
