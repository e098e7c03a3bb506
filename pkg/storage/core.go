package storage

import (
	"context"
	"time"

	"countervalidator/pkg/domain"
)

// CoreFilter narrows down and orders a validation core listing.
type CoreFilter struct {
	ValidationResults []domain.SeverityLevel
	CoPVersions       []string
	ReportCodes       []string
	APIEndpoints      []string
	DataSources       []string
	// Search is matched case-insensitively against the owner's names and email.
	Search string

	OrderBy   string
	OrderDesc bool

	Offset uint
	Limit  uint
}

// CoreOrderFields lists the accepted CoreFilter.OrderBy values.
var CoreOrderFields = []string{ //nolint: gochecknoglobals
	"created", "file_size", "used_memory", "duration", "validation_result", "cop_version",
	"report_code", "status",
}

// CorePage is one page of a validation core listing.
type CorePage struct {
	Cores []domain.ValidationCore
	Count int64
}

// Aggregate holds min/max/avg/median of a numeric column. Values are nil when
// there are no rows.
type Aggregate struct {
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Avg    *float64 `json:"avg"`
	Median *float64 `json:"median"`
}

// CoreStats are aggregated figures over validation cores.
type CoreStats struct {
	Total      int64     `json:"total"`
	Duration   Aggregate `json:"duration"`
	FileSize   Aggregate `json:"file_size"`
	UsedMemory Aggregate `json:"used_memory"`
}

// TimeStat counts validations created on one day, split by severity label.
type TimeStat struct {
	Date     time.Time
	Total    int64
	ByResult map[string]int64
}

// SplitStat counts validations sharing source, method, result, CoP version and report code.
type SplitStat struct {
	Source     string `db:"source"      json:"source"`
	Method     string `db:"method"      json:"method"`
	Result     string `db:"result"      json:"result"`
	CoPVersion string `db:"cop_version" json:"cop_version"`
	ReportCode string `db:"report_code" json:"report_code"`
	Count      int64  `db:"count"       json:"count"`
}

// DailyCount counts validations of one user, CoP version and result.
type DailyCount struct {
	UserEmail        string
	CoPVersion       string
	ValidationResult domain.SeverityLevel
	Count            int64
}

// CoreStorage reads validation cores and their statistics. A nil userID covers all users.
type CoreStorage interface {
	Cores(ctx context.Context, filter CoreFilter) (CorePage, error)
	// CoreByID returns nil when the core does not exist.
	CoreByID(ctx context.Context, id domain.CoreID) (*domain.ValidationCore, error)
	// MarkCoreFailed sets a core to FAILURE unless it already finished.
	MarkCoreFailed(ctx context.Context, validationID domain.ValidationID, errorMessage string) error

	CoreStats(ctx context.Context, userID *domain.UserID) (CoreStats, error)
	CoreTimeStats(ctx context.Context, userID *domain.UserID) ([]TimeStat, error)
	CoreSplitStats(ctx context.Context, userID *domain.UserID) ([]SplitStat, error)
	// CountsSince groups cores created since the given time by user email, CoP
	// version and result.
	CountsSince(ctx context.Context, since time.Time) ([]DailyCount, error)
}
