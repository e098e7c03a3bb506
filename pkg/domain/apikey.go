package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// APIKeyPrefixLength is the length of the public part of an API key.
	APIKeyPrefixLength = 8
	// APIKeySecretLength is the length of the secret part of an API key.
	APIKeySecretLength = 48
	// APIKeyNameMaxLength limits the user-provided key name.
	APIKeyNameMaxLength = 50
)

// APIKeyID identifies a stored API key.
type APIKeyID uuid.UUID

// APIKey is a user-owned credential used with the "Authorization: Api-Key <key>" header.
// Only a hash of the full key is stored; the plaintext is shown once at creation.
type APIKey struct {
	ID         APIKeyID
	UserID     UserID
	Prefix     string
	HashedKey  string
	Name       string
	Revoked    bool
	ExpiryDate *time.Time
	CreatedAt  time.Time
}

// HasExpired reports whether the key expiry date lies before now.
func (k *APIKey) HasExpired(now time.Time) bool {
	return k.ExpiryDate != nil && k.ExpiryDate.Before(now)
}

// Usable reports whether the key can still authenticate requests.
func (k *APIKey) Usable(now time.Time) bool {
	return !k.Revoked && !k.HasExpired(now)
}
