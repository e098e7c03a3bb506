package validator

import (
	"context"
	"io"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/storage"

	"github.com/google/uuid"
)

// Actor is the authenticated caller creating a validation. APIKey is nil for
// bearer-authenticated requests.
type Actor struct {
	User   *domain.User
	APIKey *domain.APIKey
}

// FileUpload is an uploaded report file.
type FileUpload struct {
	Filename string
	Body     io.ReadSeeker
	UserNote string
}

// CounterAPIRequest describes a COUNTER API validation to create. Dates are
// YYYY-MM-DD or YYYY-MM.
type CounterAPIRequest struct {
	Credentials     map[string]string `json:"credentials"`
	URL             string            `json:"url"              validate:"required,url,max=200"`
	APIEndpoint     string            `json:"api_endpoint"     validate:"max=64"`
	CoPVersion      string            `json:"cop_version"      validate:"required,max=16"`
	ReportCode      string            `json:"report_code"      validate:"max=16"`
	BeginDate       string            `json:"begin_date"`
	EndDate         string            `json:"end_date"`
	UseShortDates   bool              `json:"use_short_dates"`
	ExtraAttributes map[string]any    `json:"extra_attributes"`
	UserNote        string            `json:"user_note"`
}

// Stats summarises the messages of one validation.
type Stats struct {
	Summary         []domain.SummaryStat
	SummarySeverity []domain.SummarySeverityStat
}

// QueueStatus describes the validation queue.
type QueueStatus struct {
	Queued  int64 `json:"queued"`
	Running int64 `json:"running"`
	Workers int   `json:"workers"`
}

//go:generate mockgen -package mockvalidator -source=interface.go -destination=mock/mockvalidator.go *
type Service interface {
	CreateFile(ctx context.Context, actor Actor, upload FileUpload) (*domain.Validation, error)
	CreateCounterAPI(ctx context.Context, actor Actor, req CounterAPIRequest) (*domain.Validation, error)

	// Validations lists the current validations of user.
	Validations(ctx context.Context, user *domain.User, filter storage.ValidationFilter) (storage.ValidationPage, error)
	// AllValidations lists current validations of every user. Admins only.
	AllValidations(ctx context.Context, user *domain.User, filter storage.ValidationFilter) (storage.ValidationPage, error)
	// Validation finds a current validation visible to viewer by its id or public id.
	// A nil viewer is anonymous.
	Validation(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Validation, error)
	PublicValidation(ctx context.Context, publicID uuid.UUID) (*domain.Validation, error)
	Delete(ctx context.Context, user *domain.User, id domain.ValidationID) error
	Publish(ctx context.Context, user *domain.User, id domain.ValidationID) (*domain.Validation, error)
	Unpublish(ctx context.Context, user *domain.User, id domain.ValidationID) (*domain.Validation, error)
	Stats(ctx context.Context, viewer *domain.User, id uuid.UUID) (*Stats, error)
	Messages(ctx context.Context, viewer *domain.User, id uuid.UUID, filter storage.MessageFilter) (storage.MessagePage, error)
	// FileURL returns the public URL of the validation file, or nil when none is stored.
	FileURL(v *domain.Validation) *string

	Cores(ctx context.Context, user *domain.User, filter storage.CoreFilter) (storage.CorePage, error)
	Core(ctx context.Context, user *domain.User, id domain.CoreID) (*domain.ValidationCore, error)
	CoreStats(ctx context.Context, user *domain.User, of *domain.UserID) (storage.CoreStats, error)
	CoreTimeStats(ctx context.Context, user *domain.User, of *domain.UserID) ([]storage.TimeStat, error)
	CoreSplitStats(ctx context.Context, user *domain.User, of *domain.UserID) ([]storage.SplitStat, error)
	QueueStatus(ctx context.Context, user *domain.User) (*QueueStatus, error)

	// Process runs a queued validation through a validation module.
	Process(ctx context.Context, id domain.ValidationID) error
	// Fail marks an unfinished validation as failed.
	Fail(ctx context.Context, id domain.ValidationID, msg string) error
	// CleanupExpired deletes expired validations with their files and returns how many were removed.
	CleanupExpired(ctx context.Context) (int, error)
}
