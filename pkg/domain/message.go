package domain

import "github.com/google/uuid"

// ValidationMessage is a single finding reported by a validation module.
// Number orders messages inside one validation, starting at 1.
type ValidationMessage struct {
	ID           uuid.UUID
	ValidationID ValidationID
	Number       int
	Severity     SeverityLevel
	Code         string
	Location     string
	Message      string
	Summary      string
	Hint         string
	Data         string
}

// ModuleMessage is the compact message form emitted by validation modules.
type ModuleMessage struct {
	Level    string  `json:"l"           validate:"required,severity"`
	Message  *string `json:"m"           validate:"required"`
	Summary  *string `json:"s"           validate:"required"`
	Location *string `json:"p,omitempty"`
	Hint     *string `json:"h,omitempty"`
	Data     *string `json:"d,omitempty"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// NewValidationMessage converts a module message into a stored message with the given number.
func NewValidationMessage(validationID ValidationID, number int, m ModuleMessage) ValidationMessage {
	return ValidationMessage{
		ValidationID: validationID,
		Number:       number,
		Severity:     SeverityByLabel(m.Level),
		Location:     deref(m.Location),
		Message:      deref(m.Message),
		Summary:      deref(m.Summary),
		Hint:         deref(m.Hint),
		Data:         deref(m.Data),
	}
}

// SummaryStat counts messages sharing one summary.
type SummaryStat struct {
	Summary string `json:"summary"`
	Count   int64  `json:"count"`
}

// SummarySeverityStat counts messages sharing one summary and severity.
type SummarySeverityStat struct {
	Summary  string `json:"summary"`
	Severity string `json:"severity"`
	Count    int64  `json:"count"`
}
