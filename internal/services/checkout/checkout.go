// Package checkout contains the business logic around the payment
// provider: creating checkout sessions and resolving their status.
//
// Status resolution is fail-closed: only an explicit "paid" answer from
// the provider upgrades a user, every other answer (including provider
// errors) leaves the subscription untouched.
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/streadway/amqp"

	"github.com/neurobond/neurobond/internal/lib/rabbitmq"
	"github.com/neurobond/neurobond/internal/lib/sl"
	"github.com/neurobond/neurobond/internal/metrics"
	"github.com/neurobond/neurobond/internal/models"
	"github.com/neurobond/neurobond/internal/paymentprovider"
	rmq "github.com/neurobond/neurobond/internal/rabbitmq"
)

// UserService describes the user operations the checkout flow needs.
type UserService interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ActivateSubscription(ctx context.Context, email string) error
}

// PriceResolver maps a package type to the provider price id.
type PriceResolver struct {
	MonthlyPriceID string
	YearlyPriceID  string
}

// Resolve returns the price id for a package type.
func (p PriceResolver) Resolve(packageType string) (string, error) {
	switch packageType {
	case models.PackageMonthly:
		return p.MonthlyPriceID, nil
	case models.PackageYearly:
		return p.YearlyPriceID, nil
	default:
		return "", fmt.Errorf("unknown package type: %s", packageType)
	}
}

// Service implements the checkout business logic.
type Service struct {
	gateway paymentprovider.Gateway
	users   UserService
	prices  PriceResolver
	channel *amqp.Channel
	log     *slog.Logger
}

// New creates a checkout Service. channel may be nil when the broker is
// not configured; upgrade events are then skipped.
func New(gateway paymentprovider.Gateway, users UserService, prices PriceResolver, channel *amqp.Channel, log *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		users:   users,
		prices:  prices,
		channel: channel,
		log:     log,
	}
}

// CreateSession creates a provider checkout session for the requested
// package and returns the hosted payment URL and the session id.
func (s *Service) CreateSession(ctx context.Context, req models.CheckoutRequest) (*models.CheckoutSession, error) {
	priceID, err := s.prices.Resolve(req.PackageType)
	if err != nil {
		return nil, err
	}

	session, err := s.gateway.CreateSession(ctx, paymentprovider.SessionParams{
		PriceID:       priceID,
		CustomerEmail: req.UserEmail,
		SuccessURL:    req.OriginURL + "?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:     req.OriginURL,
	})
	if err != nil {
		return nil, err
	}
	if session.URL == "" {
		return nil, fmt.Errorf("provider returned session %s without url", session.ID)
	}

	metrics.CheckoutSessionsStarted.WithLabelValues(req.PackageType).Inc()
	s.log.Info("created checkout session",
		slog.String("session_id", session.ID),
		slog.String("package_type", req.PackageType))

	return &models.CheckoutSession{URL: session.URL, SessionID: session.ID}, nil
}

// ResolveStatus asks the provider for the payment status of a session.
// When the session is paid and the payer is a known user, the user's
// subscription is activated and an upgrade event is published for the
// confirmation mail. A payer unknown to the user store is not an error:
// a paid visitor registers through onboarding afterwards.
func (s *Service) ResolveStatus(ctx context.Context, sessionID string) (*models.CheckoutStatus, error) {
	session, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		metrics.CheckoutReconciled.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.CheckoutReconciled.WithLabelValues(session.PaymentStatus).Inc()
	if session.PaymentStatus != models.PaymentStatusPaid {
		return &models.CheckoutStatus{PaymentStatus: session.PaymentStatus}, nil
	}

	if session.CustomerEmail != "" {
		s.activatePaidUser(ctx, session.CustomerEmail)
	}
	return &models.CheckoutStatus{PaymentStatus: models.PaymentStatusPaid}, nil
}

func (s *Service) activatePaidUser(ctx context.Context, email string) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.log.Info("paid session for unregistered email", slog.String("email", email))
		return
	}
	// The status endpoint is open and can be polled; an already active
	// subscription must not be re-activated or mailed again.
	if user.SubscriptionStatus == models.SubscriptionStatusActive {
		return
	}
	if err := s.users.ActivateSubscription(ctx, email); err != nil {
		s.log.Error("failed to activate subscription", sl.Err(err))
		return
	}

	if s.channel == nil {
		return
	}
	event := models.UpgradeEvent{Email: user.Email, Name: user.Name}
	if err := rabbitmq.PublishMessage(s.channel, rmq.UpgradeExchange, "confirmed", event); err != nil {
		s.log.Error("failed to publish upgrade event", sl.Err(err))
	}
}
