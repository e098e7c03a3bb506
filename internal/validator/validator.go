package validator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"countervalidator/internal/config"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/filestore"
	"countervalidator/pkg/hashing"
	"countervalidator/pkg/logger"
	"countervalidator/pkg/metrics"
	"countervalidator/pkg/modulelock"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"
	"countervalidator/pkg/validationmodule"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const maxFilenameLength = 256

// Options configure validation lifetimes, upload limits and job retries.
type Options struct {
	// LifetimeDays is how long a validation is kept; 0 keeps it forever.
	LifetimeDays int
	// PublicLifetimeDays is how long a published validation is kept.
	PublicLifetimeDays int
	// FileSizeLimits maps a file type to its max size in bytes.
	FileSizeLimits map[string]int64
	// Workers is the number of validation modules, which is also the number of
	// validations processed at once.
	Workers int
	// MaxAttempts is how many times a validation job is tried.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		LifetimeDays:       cfg.Validation.LifetimeDays,
		PublicLifetimeDays: cfg.Validation.PublicLifetimeDays,
		FileSizeLimits:     cfg.Validation.FileSizeLimits,
		Workers:            len(cfg.ValidationModules.URLs),
		MaxAttempts:        cfg.Worker.MaxAttempts,
	}
}

// Deps are the collaborators of the validation service.
type Deps struct {
	Storage storage.Storage
	Files   filestore.Store
	Hasher  *hashing.Hasher
	Locker  modulelock.Locker
	Modules validationmodule.Client
}

type service struct {
	options Options
	storage storage.Storage
	files   filestore.Store
	hasher  *hashing.Hasher
	locker  modulelock.Locker
	modules validationmodule.Client
	now     func() time.Time
}

// New creates a validation Service.
func New(deps Deps, options Options) Service {
	return &service{
		options: options,
		storage: deps.Storage,
		files:   deps.Files,
		hasher:  deps.Hasher,
		locker:  deps.Locker,
		modules: deps.Modules,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

var errNotFound = serrors.With(serrors.ErrNotFound, "validation not found")

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}

// newCore fills the fields shared by both validation sources.
func (s *service) newCore(actor Actor, now time.Time) domain.ValidationCore {
	core := domain.ValidationCore{
		ID:             domain.CoreID(uuid.Must(uuid.NewV7())),
		Created:        now,
		LastUpdated:    now,
		Status:         domain.ValidationStatusWaiting,
		ExpirationDate: domain.ExpirationAfter(now, s.options.LifetimeDays),
		Stats:          map[string]int{},
	}
	if actor.User != nil {
		core.UserID = &actor.User.ID
		core.UserEmailChecksum = s.hasher.String(actor.User.Email)
	}
	if actor.APIKey != nil {
		core.APIKeyPrefix = actor.APIKey.Prefix
	}

	return core
}

// store persists a new validation together with its job in one transaction.
func (s *service) store(ctx context.Context, v domain.Validation, job river.JobArgs) (*domain.Validation, error) {
	var stored *domain.Validation
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreValidation(ctx, v)
		if err != nil {
			return fmt.Errorf("could not store validation: %w", err)
		}
		stored = res

		if _, err := tx.AddJob(ctx, job, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create validation: %w", err)
	}

	metrics.ValidationsCreated.WithLabelValues(v.Core.Source()).Inc()
	logger.Info(ctx, "validation created",
		logger.ValidationID(v.ID), zap.String("source", v.Core.Source()))

	return stored, nil
}

func (s *service) CreateFile(ctx context.Context, actor Actor, upload FileUpload) (*domain.Validation, error) {
	if upload.Body == nil {
		return nil, serrors.NewFieldError().Add("file", "No file was submitted.").Err()
	}

	head, err := sniff(upload.Body)
	if err != nil {
		return nil, err
	}
	checksum, size, err := s.hasher.Checksum(upload.Body)
	if err != nil {
		return nil, fmt.Errorf("could not checksum file: %w", err)
	}
	if size == 0 {
		return nil, serrors.NewFieldError().Add("file", "The submitted file is empty.").Err()
	}
	if err := checkFileSize(s.options.FileSizeLimits, DetectFileType(head), size); err != nil {
		return nil, err
	}
	if _, err := upload.Body.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("could not rewind file: %w", err)
	}

	filePath, err := s.files.Save(ctx, upload.Filename, upload.Body)
	if err != nil {
		return nil, fmt.Errorf("could not save file: %w", err)
	}

	now := s.now()
	core := s.newCore(actor, now)
	core.FileChecksum = checksum
	core.FileSize = size
	v := domain.Validation{
		ID:       domain.ValidationID(uuid.Must(uuid.NewV7())),
		Core:     core,
		Filename: truncate(upload.Filename, maxFilenameLength),
		FilePath: filePath,
		UserNote: upload.UserNote,
	}
	v.Core.ValidationResult = v.ExtractValidationResult()

	stored, err := s.store(ctx, v, FileJobArgs{ValidationID: uuid.UUID(v.ID), maxAttempts: s.options.MaxAttempts})
	if err != nil {
		if delErr := s.files.Delete(ctx, filePath); delErr != nil {
			logger.Warn(ctx, "could not remove orphaned file", zap.String("path", filePath), zap.Error(delErr))
		}

		return nil, err
	}

	return stored, nil
}

func (s *service) CreateCounterAPI(ctx context.Context, actor Actor, req CounterAPIRequest) (*domain.Validation, error) {
	params, err := checkCounterAPIRequest(&req)
	if err != nil {
		return nil, err
	}

	sushiChecksum, err := s.hasher.Map(params.Credentials)
	if err != nil {
		return nil, fmt.Errorf("could not checksum credentials: %w", err)
	}

	now := s.now()
	core := s.newCore(actor, now)
	core.APIEndpoint = req.APIEndpoint
	core.CoPVersion = req.CoPVersion
	core.SushiCredentialsChecksum = sushiChecksum
	v := domain.Validation{
		ID:         domain.ValidationID(uuid.Must(uuid.NewV7())),
		Core:       core,
		UserNote:   req.UserNote,
		CounterAPI: params,
	}
	v.Core.ValidationResult = v.ExtractValidationResult()

	return s.store(ctx, v, CounterAPIJobArgs{ValidationID: uuid.UUID(v.ID), maxAttempts: s.options.MaxAttempts})
}

func (s *service) Validations(ctx context.Context,
	user *domain.User,
	filter storage.ValidationFilter) (storage.ValidationPage, error) {
	if user == nil {
		return storage.ValidationPage{}, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	filter.UserID = &user.ID
	filter.SearchUser = false
	filter.Now = s.now()

	page, err := s.storage.Validations(ctx, filter)
	if err != nil {
		return storage.ValidationPage{}, fmt.Errorf("could not list validations: %w", err)
	}

	return page, nil
}

func (s *service) AllValidations(ctx context.Context,
	user *domain.User,
	filter storage.ValidationFilter) (storage.ValidationPage, error) {
	if err := requireAdmin(user); err != nil {
		return storage.ValidationPage{}, err
	}
	filter.UserID = nil
	filter.SearchUser = true
	filter.Now = s.now()

	page, err := s.storage.Validations(ctx, filter)
	if err != nil {
		return storage.ValidationPage{}, fmt.Errorf("could not list validations: %w", err)
	}

	return page, nil
}

// lookup finds a current validation by its id, falling back to the public id.
func (s *service) lookup(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Validation, error) {
	now := s.now()
	v, err := s.storage.ValidationByID(ctx, domain.ValidationID(id))
	if err != nil {
		return nil, fmt.Errorf("could not get validation: %w", err)
	}
	if v != nil && v.IsCurrent(now) && v.VisibleTo(viewer) {
		return v, nil
	}

	v, err = s.storage.ValidationByPublicID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get public validation: %w", err)
	}
	if v != nil && v.IsCurrent(now) {
		return v, nil
	}

	return nil, errNotFound
}

// manageable loads a current validation that user may modify.
func (s *service) manageable(ctx context.Context, user *domain.User, id domain.ValidationID) (*domain.Validation, error) {
	if user == nil {
		return nil, serrors.KindOnly(serrors.ErrUnauthorized)
	}
	v, err := s.storage.ValidationByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get validation: %w", err)
	}
	if v == nil || !v.IsCurrent(s.now()) || !v.ManageableBy(user) {
		return nil, errNotFound
	}

	return v, nil
}

func (s *service) Validation(ctx context.Context, viewer *domain.User, id uuid.UUID) (*domain.Validation, error) {
	return s.lookup(ctx, viewer, id)
}

func (s *service) PublicValidation(ctx context.Context, publicID uuid.UUID) (*domain.Validation, error) {
	v, err := s.storage.ValidationByPublicID(ctx, publicID)
	if err != nil {
		return nil, fmt.Errorf("could not get public validation: %w", err)
	}
	if v == nil || !v.IsCurrent(s.now()) {
		return nil, errNotFound
	}

	return v, nil
}

func (s *service) Delete(ctx context.Context, user *domain.User, id domain.ValidationID) error {
	v, err := s.manageable(ctx, user, id)
	if err != nil {
		return err
	}
	if err := s.storage.DeleteValidation(ctx, id); err != nil {
		return fmt.Errorf("could not delete validation: %w", err)
	}
	if v.FilePath != "" {
		if err := s.files.Delete(ctx, v.FilePath); err != nil {
			logger.Warn(ctx, "could not delete validation file", zap.String("path", v.FilePath), zap.Error(err))
		}
	}

	return nil
}

func (s *service) Publish(ctx context.Context, user *domain.User, id domain.ValidationID) (*domain.Validation, error) {
	v, err := s.manageable(ctx, user, id)
	if err != nil {
		return nil, err
	}
	publicID := uuid.New()
	v.PublicID = &publicID
	v.Core.ExpirationDate = domain.ExpirationAfter(s.now(), s.options.PublicLifetimeDays)

	if err := s.storage.UpdateValidation(ctx, *v); err != nil {
		return nil, fmt.Errorf("could not publish validation: %w", err)
	}

	return v, nil
}

func (s *service) Unpublish(ctx context.Context, user *domain.User, id domain.ValidationID) (*domain.Validation, error) {
	v, err := s.manageable(ctx, user, id)
	if err != nil {
		return nil, err
	}
	v.PublicID = nil
	v.Core.ExpirationDate = domain.ExpirationAfter(s.now(), s.options.LifetimeDays)

	if err := s.storage.UpdateValidation(ctx, *v); err != nil {
		return nil, fmt.Errorf("could not unpublish validation: %w", err)
	}

	return v, nil
}

func (s *service) Stats(ctx context.Context, viewer *domain.User, id uuid.UUID) (*Stats, error) {
	v, err := s.lookup(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	summary, err := s.storage.SummaryStats(ctx, v.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get summary stats: %w", err)
	}
	severity, err := s.storage.SummarySeverityStats(ctx, v.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get summary severity stats: %w", err)
	}

	return &Stats{Summary: summary, SummarySeverity: severity}, nil
}

func (s *service) Messages(ctx context.Context,
	viewer *domain.User,
	id uuid.UUID,
	filter storage.MessageFilter) (storage.MessagePage, error) {
	v, err := s.lookup(ctx, viewer, id)
	if err != nil {
		return storage.MessagePage{}, err
	}
	filter.ValidationID = v.ID

	page, err := s.storage.Messages(ctx, filter)
	if err != nil {
		return storage.MessagePage{}, fmt.Errorf("could not list messages: %w", err)
	}

	return page, nil
}

func (s *service) FileURL(v *domain.Validation) *string {
	if v == nil || v.FilePath == "" {
		return nil
	}
	u := s.files.URL(v.FilePath)

	return &u
}

// CleanupExpired keeps going when a file cannot be removed; the rows are gone already.
func (s *service) CleanupExpired(ctx context.Context) (int, error) {
	paths, err := s.storage.DeleteExpiredValidations(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("could not delete expired validations: %w", err)
	}

	var failed int
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := s.files.Delete(ctx, p); err != nil {
			failed++
			logger.Warn(ctx, "could not delete expired validation file", zap.String("path", p), zap.Error(err))
		}
	}
	if failed > 0 {
		logger.Warn(ctx, "some expired files were kept", zap.Int("count", failed))
	}

	return len(paths), nil
}

// isTransient tells whether err came from ctx ending rather than from the module.
func isTransient(ctx context.Context, err error) bool {
	return ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}
