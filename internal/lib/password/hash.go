// Package password implements bcrypt hashing and verification. The
// service uses it for the test-mode secret so the clear text never lives
// in configuration.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// GetHash returns the bcrypt hash of a secret.
func GetHash(secret string) (string, error) {
	const op = "password.GetHash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// CompareHash checks a secret against its bcrypt hash.
//
// Returns nil when the secret matches, an error otherwise.
func CompareHash(originalHash, externalSecret string) error {
	const op = "password.CompareHash"
	if err := bcrypt.CompareHashAndPassword([]byte(originalHash), []byte(externalSecret)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
