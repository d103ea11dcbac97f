// Package checkout implements the client side of the upgrade purchase:
// starting the redirect to the hosted payment page and reconciling the
// result on the next launch.
//
// Reconciliation is fail-closed: only an explicit "paid" status upgrades
// the visitor, every other answer (including a failed status call)
// clears the pending record without granting anything.
package checkout

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/models"
)

// sessionParam is the query parameter the payment provider appends to
// the return URL.
const sessionParam = "session_id"

// Outcome is the result of launch reconciliation.
type Outcome int

const (
	// OutcomeNone means no checkout was pending.
	OutcomeNone Outcome = iota
	// OutcomePaid means the pending checkout was paid; the caller
	// upgrades the tier and routes to onboarding.
	OutcomePaid
	// OutcomeNotPaid means a pending checkout existed but was not paid
	// or could not be verified; the pending record has been cleared.
	OutcomeNotPaid
)

// API is the backend surface the flow needs.
type API interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error)
	CheckoutStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error)
}

// PendingStore persists the bridge record between redirect and return.
type PendingStore interface {
	SavePendingUpgrade(p models.PendingUpgrade) error
	PendingUpgrade() *models.PendingUpgrade
	ClearPendingUpgrade()
}

// Flow drives the checkout redirect and its reconciliation.
type Flow struct {
	api   API
	store PendingStore
	log   *slog.Logger
}

// NewFlow creates a Flow.
func NewFlow(api API, store PendingStore, log *slog.Logger) *Flow {
	return &Flow{
		api:   api,
		store: store,
		log:   log,
	}
}

// Start asks the backend for a checkout session and persists the
// pending record before returning the redirect URL. On any failure no
// pending record is written and no navigation happens.
func (f *Flow) Start(ctx context.Context, packageType, userEmail, originURL string) (string, error) {
	const op = "checkout.Flow.Start"

	session, err := f.api.CreateCheckoutSession(ctx, models.CheckoutRequest{
		PackageType: packageType,
		OriginURL:   originURL,
		UserEmail:   userEmail,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("%s: provider returned no redirect url", op)
	}

	if err := f.store.SavePendingUpgrade(models.PendingUpgrade{
		PackageType:       packageType,
		CheckoutSessionID: session.SessionID,
	}); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	f.log.Info("checkout started",
		slog.String("package_type", packageType),
		slog.String("session_id", session.SessionID))
	return session.URL, nil
}

// ReconcileOnLaunch captures a checkout session id from the launch URL,
// strips it, and resolves any pending upgrade against the backend.
// The returned clean URL never carries the session parameter.
func (f *Flow) ReconcileOnLaunch(ctx context.Context, rawURL string) (Outcome, string) {
	cleanURL, sessionID := stripSessionParam(rawURL)

	pending := f.store.PendingUpgrade()
	if sessionID != "" {
		// The URL parameter wins over a stale stored id; the stored
		// record still contributes the package type.
		merged := models.PendingUpgrade{CheckoutSessionID: sessionID}
		if pending != nil {
			merged.PackageType = pending.PackageType
		}
		if err := f.store.SavePendingUpgrade(merged); err != nil {
			f.log.Warn("failed to persist captured session id", sl.Err(err))
		}
		pending = &merged
	}

	if pending == nil || pending.CheckoutSessionID == "" {
		return OutcomeNone, cleanURL
	}

	status, err := f.api.CheckoutStatus(ctx, pending.CheckoutSessionID)
	f.store.ClearPendingUpgrade()
	if err != nil {
		f.log.Warn("checkout status check failed, not upgrading", sl.Err(err))
		return OutcomeNotPaid, cleanURL
	}
	if status.PaymentStatus != models.PaymentStatusPaid {
		f.log.Info("pending checkout not paid",
			slog.String("payment_status", status.PaymentStatus))
		return OutcomeNotPaid, cleanURL
	}

	f.log.Info("pending checkout paid",
		slog.String("session_id", pending.CheckoutSessionID))
	return OutcomePaid, cleanURL
}

// stripSessionParam returns the URL without the session parameter and
// the captured value. A URL that does not parse is returned unchanged.
func stripSessionParam(rawURL string) (string, string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, ""
	}
	q := u.Query()
	sessionID := q.Get(sessionParam)
	if sessionID == "" {
		return rawURL, ""
	}
	q.Del(sessionParam)
	u.RawQuery = q.Encode()
	return u.String(), sessionID
}
