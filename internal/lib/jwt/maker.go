package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the persisted user fields inside a session token.
type SessionClaims struct {
	UUID               string `json:"uuid"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	PartnerName        string `json:"partner_name"`
	SubscriptionStatus string `json:"subscription_status"`
	jwt.RegisteredClaims
}

// GenerateToken signs the user fields into an HS256 session token with the
// configured TTL.
func (j *MakerImpl) GenerateToken(uuid, name, email, partnerName, subscriptionStatus string) (string, error) {
	claims := SessionClaims{
		UUID:               uuid,
		Name:               name,
		Email:              email,
		PartnerName:        partnerName,
		SubscriptionStatus: subscriptionStatus,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken verifies the signature and validity of a session token and
// returns its claims.
func (j *MakerImpl) ParseToken(tokenStr string) (*SessionClaims, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: invalid token", op)
	}
	return claims, nil
}
