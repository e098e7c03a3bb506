// Package account manages users, their API keys and bearer tokens.
package account

import (
	"context"

	"countervalidator/pkg/domain"
)

// NewUser holds the fields needed to create an account.
type NewUser struct {
	Email            string
	Password         string
	FirstName        string
	LastName         string
	IsValidatorAdmin bool
	IsSuperuser      bool
	EmailVerified    bool
	// ReceiveOperatorEmails subscribes a validator admin to the daily report.
	ReceiveOperatorEmails bool
}

//go:generate mockgen -package mockaccount -source=interface.go -destination=mock/mockaccount.go *
type Service interface {
	// Login checks the credentials of an active user and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// IssueToken signs a bearer token for the given user id.
	IssueToken(userID domain.UserID) (string, error)
	CreateUser(ctx context.Context, user NewUser) (*domain.User, error)
	// User returns the active user with the given id or an UNAUTHORIZED error.
	User(ctx context.Context, id domain.UserID) (*domain.User, error)

	// AuthenticateAPIKey resolves a full "<prefix>.<secret>" key to its active owner.
	AuthenticateAPIKey(ctx context.Context, key string) (*domain.User, *domain.APIKey, error)
	APIKeys(ctx context.Context, userID domain.UserID) ([]domain.APIKey, error)
	APIKey(ctx context.Context, userID domain.UserID, prefix string) (*domain.APIKey, error)
	// CreateAPIKey stores a new key and returns it with its plaintext, which is never stored.
	CreateAPIKey(ctx context.Context, userID domain.UserID, name string) (*domain.APIKey, string, error)
	RevokeAPIKey(ctx context.Context, userID domain.UserID, prefix string) (*domain.APIKey, error)
}
