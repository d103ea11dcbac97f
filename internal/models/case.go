package models

import "time"

// CommunityCase is a user-submitted dialog example shown on the
// community-cases page. Builtin cases ship with the catalog and carry no
// creation timestamp from storage.
type CommunityCase struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Dialog    string    `json:"dialog"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCaseRequest is the body of POST /api/create-community-case-direct.
// Submission without explicit consent is rejected before any write.
type CreateCaseRequest struct {
	Dialog      string `json:"dialog" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Category    string `json:"category" validate:"required"`
	UserConsent bool   `json:"user_consent"`
}
