// Package notify implements the single-slot notification service: one
// transient status message at a time, self-clearing after a fixed TTL.
// Showing a new message replaces the current one; expiry never touches
// the view state.
package notify

import (
	"sync"
	"time"

	"github.com/neurobond/neurobond/internal/models"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

// Notifier holds the single notification slot.
type Notifier struct {
	mu      sync.Mutex
	current *models.Notification
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithTTL overrides the display duration.
func WithTTL(ttl time.Duration) Option {
	return func(n *Notifier) { n.ttl = ttl }
}

// WithClock injects the time source, used in tests.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// New creates a Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		ttl: DefaultTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show replaces the slot with a new message.
func (n *Notifier) Show(message string, severity models.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = &models.Notification{
		Message:   message,
		Severity:  severity,
		ExpiresAt: n.now().Add(n.ttl),
	}
}

// Current returns the visible notification, or nil once it has expired
// or none was shown.
func (n *Notifier) Current() *models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return nil
	}
	if !n.now().Before(n.current.ExpiresAt) {
		n.current = nil
		return nil
	}
	c := *n.current
	return &c
}

// Dismiss clears the slot immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.current = nil
}
