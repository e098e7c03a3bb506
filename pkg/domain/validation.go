package domain

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxErrorMessageLength caps the error message stored on a validation core.
const MaxErrorMessageLength = 1000

const (
	// SourceFile marks validations of uploaded files.
	SourceFile = "file"
	// SourceCounterAPI marks validations of COUNTER API (SUSHI) endpoints.
	SourceCounterAPI = "counter_api"

	// MethodManual marks validations created by a logged-in user.
	MethodManual = "manual"
	// MethodAPI marks validations created with an API key.
	MethodAPI = "api"
)

// CoreID identifies a ValidationCore.
type CoreID uuid.UUID

// String returns the canonical textual form of the ID.
func (id CoreID) String() string { return uuid.UUID(id).String() }

// ValidationID identifies a Validation.
type ValidationID uuid.UUID

// String returns the canonical textual form of the ID.
func (id ValidationID) String() string { return uuid.UUID(id).String() }

// ValidationCore holds the long-lived metadata and statistics of a validation.
// Deleting a Validation keeps its core for statistics.
type ValidationCore struct {
	ID          CoreID
	Created     time.Time
	LastUpdated time.Time

	CoPVersion  string
	APIEndpoint string
	ReportCode  string
	Status      ValidationStatus

	// UserID becomes nil when the user is deleted.
	UserID *UserID
	// User is only loaded by listings that expose the owner.
	User *User

	UserEmailChecksum string
	APIKeyPrefix      string
	ExpirationDate    *time.Time

	// ValidationResult is the worst severity of the whole validation.
	ValidationResult SeverityLevel

	FileChecksum string
	FileSize     int64
	UsedMemory   int64
	// Duration is the time spent in the validation module, in seconds.
	Duration float64
	// Stats maps severity labels to message counts.
	Stats map[string]int

	SushiCredentialsChecksum string
	ErrorMessage             string
}

// Source tells whether the validation checked a file or a COUNTER API endpoint.
func (c *ValidationCore) Source() string {
	if c.SushiCredentialsChecksum == "" {
		return SourceFile
	}

	return SourceCounterAPI
}

// Method tells whether the validation was created manually or through an API key.
func (c *ValidationCore) Method() string {
	if c.APIKeyPrefix == "" {
		return MethodManual
	}

	return MethodAPI
}

// SetErrorMessage stores msg truncated to MaxErrorMessageLength characters.
func (c *ValidationCore) SetErrorMessage(msg string) {
	if utf8.RuneCountInString(msg) > MaxErrorMessageLength {
		msg = string([]rune(msg)[:MaxErrorMessageLength])
	}
	c.ErrorMessage = msg
}

// ExpirationAfter returns now shifted by the given number of days, or nil when days
// is not positive, meaning the validation never expires.
func ExpirationAfter(now time.Time, days int) *time.Time {
	if days <= 0 {
		return nil
	}
	t := now.AddDate(0, 0, days)

	return &t
}

// Validation is a single validation attempt together with its result payload.
type Validation struct {
	ID   ValidationID
	Core ValidationCore

	// Filename is the original name of the validated file.
	Filename string
	// FilePath locates the file inside the file store; empty when no file is kept.
	FilePath string
	// ResultData is the module result without the messages.
	ResultData map[string]any
	UserNote   string
	PublicID   *uuid.UUID

	// CounterAPI is set for COUNTER API validations.
	CounterAPI *CounterAPIValidation
}

// IsCounterAPI reports whether v validates a COUNTER API endpoint.
func (v *Validation) IsCounterAPI() bool { return v.CounterAPI != nil }

// IsPublic reports whether the validation was published.
func (v *Validation) IsPublic() bool { return v.PublicID != nil }

// IsCurrent reports whether the validation has not expired yet.
func (v *Validation) IsCurrent(now time.Time) bool {
	return v.Core.ExpirationDate == nil || !v.Core.ExpirationDate.Before(now)
}

// OwnedBy reports whether u created the validation.
func (v *Validation) OwnedBy(u *User) bool {
	return u != nil && v.Core.UserID != nil && *v.Core.UserID == u.ID
}

// VisibleTo reports whether u may read the validation. A nil user is anonymous.
func (v *Validation) VisibleTo(u *User) bool {
	return v.IsPublic() || v.OwnedBy(u) || u.IsAdmin()
}

// ManageableBy reports whether u may delete, publish or unpublish the validation.
func (v *Validation) ManageableBy(u *User) bool {
	return v.OwnedBy(u) || u.IsAdmin()
}

// ExtractValidationResult derives the worst severity from the "result" label of ResultData.
func (v *Validation) ExtractValidationResult() SeverityLevel {
	if len(v.ResultData) == 0 {
		return SeverityUnknown
	}
	label, _ := v.ResultData["result"].(string)

	return SeverityByLabel(label)
}

// AddResult stores the module result without its messages as ResultData and
// returns the messages numbered from 1. Stats and ValidationResult are updated.
func (v *Validation) AddResult(resultData map[string]any, messages []ModuleMessage) []ValidationMessage {
	v.ResultData = resultData
	out := make([]ValidationMessage, 0, len(messages))
	stats := map[string]int{}
	for i, m := range messages {
		msg := NewValidationMessage(v.ID, i+1, m)
		stats[msg.Severity.Label()]++
		out = append(out, msg)
	}
	v.Core.Stats = stats
	v.Core.ValidationResult = v.ExtractValidationResult()

	return out
}
