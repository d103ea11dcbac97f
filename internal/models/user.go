// Package models contains the domain structures of the NEUROBOND service:
// users, subscription tiers, views, catalog content and the request types
// accepted by the HTTP API. The structures are shared between the backend
// services, the storage layer and the client core.
package models

// Subscription status values stored on the user record.
const (
	SubscriptionStatusFree   = "free"
	SubscriptionStatusActive = "active"
)

// User represents a registered NEUROBOND user.
type User struct {
	UUID               string `json:"id"`                  // Unique user identifier
	Name               string `json:"name"`                // Display name given at onboarding
	Email              string `json:"email"`               // E-mail address (unique)
	PartnerName        string `json:"partner_name"`        // Name of the user's partner
	SubscriptionStatus string `json:"subscription_status"` // "free" or "active"
}

// RegisterRequest carries the onboarding form data before it is
// converted into a User. Name and e-mail are mandatory, the partner
// name is optional.
type RegisterRequest struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	PartnerName string `json:"partner_name"`
}
