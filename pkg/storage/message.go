package storage

import (
	"context"

	"countervalidator/pkg/domain"
)

// MessageFilter narrows down and orders the messages of one validation.
type MessageFilter struct {
	ValidationID domain.ValidationID
	Severities   []domain.SeverityLevel
	// Search is matched case-insensitively against message, hint, summary and data.
	Search string

	// OrderBy is one of MessageOrderFields; empty means number ascending.
	OrderBy   string
	OrderDesc bool

	Offset uint
	Limit  uint
}

// MessageOrderFields lists the accepted MessageFilter.OrderBy values.
var MessageOrderFields = []string{"number", "severity", "code", "summary", "location"} //nolint: gochecknoglobals

// MessagePage is one page of validation messages.
type MessagePage struct {
	Messages []domain.ValidationMessage
	Count    int64
}

// MessageStorage persists validation messages.
type MessageStorage interface {
	StoreMessages(ctx context.Context, messages ...domain.ValidationMessage) error
	DeleteMessages(ctx context.Context, validationID domain.ValidationID) error
	Messages(ctx context.Context, filter MessageFilter) (MessagePage, error)
	// SummaryStats counts messages per summary, most frequent first.
	SummaryStats(ctx context.Context, validationID domain.ValidationID) ([]domain.SummaryStat, error)
	// SummarySeverityStats counts messages per summary and severity, worst severity first.
	SummarySeverityStats(ctx context.Context, validationID domain.ValidationID) ([]domain.SummarySeverityStat, error)
}
