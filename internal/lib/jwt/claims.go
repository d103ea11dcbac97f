// Package jwt implements signing and parsing of session tokens.
//
// The stored session record is a single signed string carrying the user
// fields; a token that fails signature or shape checks is treated by the
// session store as "no session" rather than as an error.
package jwt

import (
	"time"
)

// Maker describes generation and parsing of session tokens.
type Maker interface {
	// GenerateToken signs the user fields into a session token.
	GenerateToken(uuid, name, email, partnerName, subscriptionStatus string) (string, error)
	// ParseToken returns *SessionClaims when the token is valid.
	ParseToken(tokenStr string) (*SessionClaims, error)
}

// MakerImpl implements Maker with an HS256 secret key and a token TTL.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewMaker creates a MakerImpl from a secret key and TTL.
func NewMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
