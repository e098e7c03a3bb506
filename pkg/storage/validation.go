package storage

import (
	"context"
	"time"

	"countervalidator/pkg/domain"

	"github.com/google/uuid"
)

// ValidationFilter narrows down and orders a validation listing. Zero values
// disable the corresponding filter.
type ValidationFilter struct {
	// Now marks the boundary between current and expired validations.
	Now time.Time
	// UserID restricts the listing to validations of one user.
	UserID *domain.UserID

	ValidationResults []domain.SeverityLevel
	CoPVersions       []string
	ReportCodes       []string
	APIEndpoints      []string
	// DataSources holds domain.SourceFile and/or domain.SourceCounterAPI.
	DataSources []string
	Published   *bool

	// Search is matched case-insensitively against user note and filename.
	Search string
	// SearchUser extends Search to the owner's names and email.
	SearchUser bool

	// CreatedFrom and CreatedTo bound the creation time, [from, to).
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	// OrderBy is one of ValidationOrderFields; empty means newest first.
	OrderBy   string
	OrderDesc bool

	Offset uint
	Limit  uint
}

// ValidationOrderFields lists the accepted ValidationFilter.OrderBy values.
var ValidationOrderFields = []string{ //nolint: gochecknoglobals
	"file_size", "created", "validation_result", "expiration_date", "report_code",
	"cop_version", "status", "filename", "user_note",
}

// ValidationPage is one page of a validation listing.
type ValidationPage struct {
	Validations []domain.Validation
	// Count is the number of matching validations over all pages.
	Count int64
}

// ValidationStorage persists validations together with their cores and COUNTER API parameters.
type ValidationStorage interface {
	// StoreValidation inserts the core, the validation and its COUNTER API
	// parameters. IDs must be set by the caller.
	StoreValidation(ctx context.Context, validation domain.Validation) (*domain.Validation, error)
	// UpdateValidation writes back every mutable field of the validation and its
	// core. last_updated is set automatically.
	UpdateValidation(ctx context.Context, validation domain.Validation) error
	// ValidationByID returns the validation, expired or not, or nil.
	ValidationByID(ctx context.Context, id domain.ValidationID) (*domain.Validation, error)
	// ValidationByPublicID returns the published validation, or nil.
	ValidationByPublicID(ctx context.Context, publicID uuid.UUID) (*domain.Validation, error)
	// Validations lists current validations matching the filter.
	Validations(ctx context.Context, filter ValidationFilter) (ValidationPage, error)
	// DeleteValidation removes the validation and its messages. The core stays.
	DeleteValidation(ctx context.Context, id domain.ValidationID) error
	// DeleteExpiredValidations removes every validation that expired before now and
	// returns the file paths they referenced.
	DeleteExpiredValidations(ctx context.Context, now time.Time) ([]string, error)
}
