package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the ID.
func (id UserID) String() string { return uuid.UUID(id).String() }

// User is an account able to run validations. Email is the login name.
type User struct {
	ID           UserID
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string

	IsValidatorAdmin bool
	IsSuperuser      bool
	IsActive         bool
	EmailVerified    bool
	// ReceiveOperatorEmails opts a validator admin into the daily report.
	ReceiveOperatorEmails bool

	CreatedAt time.Time
}

// IsAdmin reports whether the user may see and manage validations of all users.
func (u *User) IsAdmin() bool {
	return u != nil && (u.IsSuperuser || u.IsValidatorAdmin)
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
