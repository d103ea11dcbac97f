package models

// Package types purchasable through checkout.
const (
	PackageMonthly = "monthly"
	PackageYearly  = "yearly"
)

// Payment status values returned by the checkout status endpoint.
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

// PendingUpgrade is the ephemeral record bridging a checkout redirect and
// the status check on return. It is written when the redirect is initiated
// and deleted once the reconciliation has run, paid or not.
type PendingUpgrade struct {
	PackageType       string `json:"package_type"`
	CheckoutSessionID string `json:"checkout_session_id"`
}

// CheckoutRequest is the body of POST /api/checkout/session.
type CheckoutRequest struct {
	PackageType string `json:"package_type" validate:"required,oneof=monthly yearly"`
	OriginURL   string `json:"origin_url" validate:"required,url"`
	UserEmail   string `json:"user_email" validate:"required,email"`
}

// CheckoutSession is the response of a successful session creation.
type CheckoutSession struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CheckoutStatus is the response of GET /api/checkout/status/{session_id}.
type CheckoutStatus struct {
	PaymentStatus string `json:"payment_status"`
}

// UpgradeEvent is published after a paid checkout has been reconciled and
// consumed by the upgrade-sender worker.
type UpgradeEvent struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
