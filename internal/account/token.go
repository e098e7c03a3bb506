package account

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// issueToken signs an RS256 token whose subject is the user id.
func (s *service) issueToken(subject string, now time.Time) (string, error) {
	if s.privateKey == nil {
		return "", errNoSigningKey
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.options.TokenTTL)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
	if err != nil {
		return "", fmt.Errorf("could not sign JWT: %w", err)
	}

	return signed, nil
}
