package storage

import (
	"context"

	"countervalidator/pkg/domain"
)

// APIKeyStorage persists user API keys.
type APIKeyStorage interface {
	StoreAPIKey(ctx context.Context, key domain.APIKey) (*domain.APIKey, error)
	// APIKeyByPrefix returns nil when no key has the prefix.
	APIKeyByPrefix(ctx context.Context, prefix string) (*domain.APIKey, error)
	// UserAPIKeys lists the keys of a user, newest first.
	UserAPIKeys(ctx context.Context, userID domain.UserID) ([]domain.APIKey, error)
	// RevokeAPIKey marks the key revoked and returns it, or nil when it does not exist.
	RevokeAPIKey(ctx context.Context, id domain.APIKeyID) (*domain.APIKey, error)
}
