package storage

import (
	"context"

	"countervalidator/pkg/domain"
)

// UserStorage persists user accounts.
type UserStorage interface {
	// StoreUser inserts a new user and returns it with generated fields set.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID returns nil when the user does not exist.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// UserByEmail matches the email case-insensitively. Returns nil when not found.
	UserByEmail(ctx context.Context, email string) (*domain.User, error)
	// ValidatorAdmins lists active superusers and validator admins.
	ValidatorAdmins(ctx context.Context) ([]domain.User, error)
}
