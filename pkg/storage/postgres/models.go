package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"countervalidator/pkg/domain"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type PgUser struct {
	ID               uuid.UUID `db:"id"                 goqu:"skipinsert"`
	Email            string    `db:"email"`
	PasswordHash     string    `db:"password_hash"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	IsValidatorAdmin bool      `db:"is_validator_admin"`
	IsSuperuser      bool      `db:"is_superuser"`
	IsActive         bool      `db:"is_active"`
	EmailVerified    bool      `db:"email_verified"`
	ReceiveOperator  bool      `db:"receive_operator_emails"`
	CreatedAt        time.Time `db:"created_at"         goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:               domain.UserID(p.ID),
		Email:            p.Email,
		PasswordHash:     p.PasswordHash,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		IsValidatorAdmin: p.IsValidatorAdmin,
		IsSuperuser:      p.IsSuperuser,
		IsActive:         p.IsActive,
		EmailVerified:    p.EmailVerified,
		CreatedAt:        p.CreatedAt,

		ReceiveOperatorEmails: p.ReceiveOperator,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:               uuid.UUID(user.ID),
		Email:            user.Email,
		PasswordHash:     user.PasswordHash,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		IsValidatorAdmin: user.IsValidatorAdmin,
		IsSuperuser:      user.IsSuperuser,
		IsActive:         user.IsActive,
		EmailVerified:    user.EmailVerified,
		ReceiveOperator:  user.ReceiveOperatorEmails,
		CreatedAt:        user.CreatedAt,
	}
}

type PgAPIKey struct {
	ID         uuid.UUID    `db:"id"          goqu:"skipinsert"`
	UserID     uuid.UUID    `db:"user_id"`
	Prefix     string       `db:"prefix"`
	HashedKey  string       `db:"hashed_key"`
	Name       string       `db:"name"`
	Revoked    bool         `db:"revoked"`
	ExpiryDate sql.NullTime `db:"expiry_date"`
	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
}

func (p *PgAPIKey) ToDomain() *domain.APIKey {
	return &domain.APIKey{
		ID:         domain.APIKeyID(p.ID),
		UserID:     domain.UserID(p.UserID),
		Prefix:     p.Prefix,
		HashedKey:  p.HashedKey,
		Name:       p.Name,
		Revoked:    p.Revoked,
		ExpiryDate: nullTimePtr(p.ExpiryDate),
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgAPIKey) FromDomain(key domain.APIKey) {
	*p = PgAPIKey{
		ID:         uuid.UUID(key.ID),
		UserID:     uuid.UUID(key.UserID),
		Prefix:     key.Prefix,
		HashedKey:  key.HashedKey,
		Name:       key.Name,
		Revoked:    key.Revoked,
		ExpiryDate: timePtrNull(key.ExpiryDate),
		CreatedAt:  key.CreatedAt,
	}
}

type PgReport struct {
	ReportID       string `db:"report_id"`
	CounterRelease string `db:"counter_release"`
}

type PgPlatform struct {
	ID                  uuid.UUID `db:"id"`
	Name                string    `db:"name"`
	Abbrev              string    `db:"abbrev"`
	ContentProviderName string    `db:"content_provider_name"`
	Website             string    `db:"website"`
	Deprecated          bool      `db:"deprecated"`
}

func (p *PgPlatform) ToDomain() domain.Platform {
	return domain.Platform{
		ID:                  p.ID,
		Name:                p.Name,
		Abbrev:              p.Abbrev,
		ContentProviderName: p.ContentProviderName,
		Website:             p.Website,
		Deprecated:          p.Deprecated,
	}
}

type PgSushiService struct {
	ID                     uuid.UUID     `db:"id"`
	CounterRelease         string        `db:"counter_release"`
	URL                    string        `db:"url"`
	PlatformID             uuid.NullUUID `db:"platform_id"`
	IPAddressAuthorization sql.NullBool  `db:"ip_address_authorization"`
	APIKeyRequired         sql.NullBool  `db:"api_key_required"`
	PlatformAttrRequired   sql.NullBool  `db:"platform_attr_required"`
	RequestorIDRequired    sql.NullBool  `db:"requestor_id_required"`
	Deprecated             bool          `db:"deprecated"`
}

func (p *PgSushiService) ToDomain() domain.SushiService {
	s := domain.SushiService{
		ID:                     p.ID,
		CounterRelease:         p.CounterRelease,
		URL:                    p.URL,
		IPAddressAuthorization: nullBoolPtr(p.IPAddressAuthorization),
		APIKeyRequired:         nullBoolPtr(p.APIKeyRequired),
		PlatformAttrRequired:   nullBoolPtr(p.PlatformAttrRequired),
		RequestorIDRequired:    nullBoolPtr(p.RequestorIDRequired),
		Deprecated:             p.Deprecated,
	}
	if p.PlatformID.Valid {
		id := p.PlatformID.UUID
		s.PlatformID = &id
	}

	return s
}

func (p *PgSushiService) FromDomain(s domain.SushiService) {
	*p = PgSushiService{
		ID:                     s.ID,
		CounterRelease:         s.CounterRelease,
		URL:                    s.URL,
		IPAddressAuthorization: boolPtrNull(s.IPAddressAuthorization),
		APIKeyRequired:         boolPtrNull(s.APIKeyRequired),
		PlatformAttrRequired:   boolPtrNull(s.PlatformAttrRequired),
		RequestorIDRequired:    boolPtrNull(s.RequestorIDRequired),
		Deprecated:             s.Deprecated,
	}
	if s.PlatformID != nil {
		p.PlatformID = uuid.NullUUID{UUID: *s.PlatformID, Valid: true}
	}
}

type PgValidationCore struct {
	ID                       uuid.UUID       `db:"id"                         goqu:"skipupdate"`
	Created                  time.Time       `db:"created"                    goqu:"skipupdate"`
	LastUpdated              time.Time       `db:"last_updated"`
	CoPVersion               string          `db:"cop_version"`
	APIEndpoint              string          `db:"api_endpoint"`
	ReportCode               string          `db:"report_code"`
	Status                   int             `db:"status"`
	UserID                   uuid.NullUUID   `db:"user_id"`
	UserEmailChecksum        string          `db:"user_email_checksum"`
	APIKeyPrefix             string          `db:"api_key_prefix"`
	ExpirationDate           sql.NullTime    `db:"expiration_date"`
	ValidationResult         int             `db:"validation_result"`
	FileChecksum             string          `db:"file_checksum"`
	FileSize                 int64           `db:"file_size"`
	UsedMemory               int64           `db:"used_memory"`
	Duration                 float64         `db:"duration"`
	Stats                    json.RawMessage `db:"stats"`
	SushiCredentialsChecksum string          `db:"sushi_credentials_checksum"`
	ErrorMessage             string          `db:"error_message"`
}

func (p *PgValidationCore) ToDomain() (*domain.ValidationCore, error) {
	var stats map[string]int
	if len(p.Stats) > 0 {
		if err := json.Unmarshal(p.Stats, &stats); err != nil {
			return nil, fmt.Errorf("could not unmarshal core stats: %w", err)
		}
	}

	core := &domain.ValidationCore{
		ID:                       domain.CoreID(p.ID),
		Created:                  p.Created,
		LastUpdated:              p.LastUpdated,
		CoPVersion:               p.CoPVersion,
		APIEndpoint:              p.APIEndpoint,
		ReportCode:               p.ReportCode,
		Status:                   domain.ValidationStatus(p.Status),
		UserEmailChecksum:        p.UserEmailChecksum,
		APIKeyPrefix:             p.APIKeyPrefix,
		ExpirationDate:           nullTimePtr(p.ExpirationDate),
		ValidationResult:         domain.SeverityLevel(p.ValidationResult),
		FileChecksum:             p.FileChecksum,
		FileSize:                 p.FileSize,
		UsedMemory:               p.UsedMemory,
		Duration:                 p.Duration,
		Stats:                    stats,
		SushiCredentialsChecksum: p.SushiCredentialsChecksum,
		ErrorMessage:             p.ErrorMessage,
	}
	if p.UserID.Valid {
		id := domain.UserID(p.UserID.UUID)
		core.UserID = &id
	}

	return core, nil
}

func (p *PgValidationCore) FromDomain(core domain.ValidationCore) error {
	stats := core.Stats
	if stats == nil {
		stats = map[string]int{}
	}
	b, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("could not marshal core stats: %w", err)
	}

	*p = PgValidationCore{
		ID:                       uuid.UUID(core.ID),
		Created:                  core.Created,
		LastUpdated:              core.LastUpdated,
		CoPVersion:               core.CoPVersion,
		APIEndpoint:              core.APIEndpoint,
		ReportCode:               core.ReportCode,
		Status:                   int(core.Status),
		UserEmailChecksum:        core.UserEmailChecksum,
		APIKeyPrefix:             core.APIKeyPrefix,
		ExpirationDate:           timePtrNull(core.ExpirationDate),
		ValidationResult:         int(core.ValidationResult),
		FileChecksum:             core.FileChecksum,
		FileSize:                 core.FileSize,
		UsedMemory:               core.UsedMemory,
		Duration:                 core.Duration,
		Stats:                    b,
		SushiCredentialsChecksum: core.SushiCredentialsChecksum,
		ErrorMessage:             core.ErrorMessage,
	}
	if core.UserID != nil {
		p.UserID = uuid.NullUUID{UUID: uuid.UUID(*core.UserID), Valid: true}
	}

	return nil
}

type PgValidation struct {
	ID         uuid.UUID      `db:"id"          goqu:"skipupdate"`
	CoreID     uuid.UUID      `db:"core_id"     goqu:"skipupdate"`
	Filename   string         `db:"filename"`
	FilePath   string         `db:"file_path"`
	ResultData sql.NullString `db:"result_data"`
	UserNote   string         `db:"user_note"`
	PublicID   uuid.NullUUID  `db:"public_id"`
}

func (p *PgValidation) FromDomain(v domain.Validation) error {
	*p = PgValidation{
		ID:       uuid.UUID(v.ID),
		CoreID:   uuid.UUID(v.Core.ID),
		Filename: v.Filename,
		FilePath: v.FilePath,
		UserNote: v.UserNote,
	}
	if v.ResultData != nil {
		b, err := json.Marshal(v.ResultData)
		if err != nil {
			return fmt.Errorf("could not marshal result data: %w", err)
		}
		p.ResultData = sql.NullString{String: string(b), Valid: true}
	}
	if v.PublicID != nil {
		p.PublicID = uuid.NullUUID{UUID: *v.PublicID, Valid: true}
	}

	return nil
}

type PgCounterAPIValidation struct {
	ValidationID             uuid.UUID      `db:"validation_id"`
	Credentials              sql.NullString `db:"credentials"`
	URL                      string         `db:"url"`
	RequestedCoPVersion      string         `db:"requested_cop_version"`
	RequestedReportCode      string         `db:"requested_report_code"`
	RequestedExtraAttributes string         `db:"requested_extra_attributes"`
	RequestedBeginDate       sql.NullTime   `db:"requested_begin_date"`
	RequestedEndDate         sql.NullTime   `db:"requested_end_date"`
	UseShortDates            bool           `db:"use_short_dates"`
}

func (p *PgCounterAPIValidation) FromDomain(id domain.ValidationID, c domain.CounterAPIValidation) error {
	extra := c.RequestedExtraAttributes
	if extra == nil {
		extra = map[string]any{}
	}
	b, err := json.Marshal(extra)
	if err != nil {
		return fmt.Errorf("could not marshal extra attributes: %w", err)
	}

	*p = PgCounterAPIValidation{
		ValidationID:             uuid.UUID(id),
		URL:                      c.URL,
		RequestedCoPVersion:      c.RequestedCoPVersion,
		RequestedReportCode:      c.RequestedReportCode,
		RequestedExtraAttributes: string(b),
		RequestedBeginDate:       timePtrNull(c.RequestedBeginDate),
		RequestedEndDate:         timePtrNull(c.RequestedEndDate),
		UseShortDates:            c.UseShortDates,
	}
	if c.Credentials != nil {
		creds, err := json.Marshal(c.Credentials)
		if err != nil {
			return fmt.Errorf("could not marshal credentials: %w", err)
		}
		p.Credentials = sql.NullString{String: string(creds), Valid: true}
	}

	return nil
}

// PgValidationRow is a validation joined with its core, its COUNTER API
// parameters and its owner.
type PgValidationRow struct {
	PgValidationCore

	ValidationID uuid.UUID      `db:"v_id"`
	Filename     string         `db:"filename"`
	FilePath     string         `db:"file_path"`
	ResultData   sql.NullString `db:"result_data"`
	UserNote     string         `db:"user_note"`
	PublicID     uuid.NullUUID  `db:"public_id"`

	APIValidationID          uuid.NullUUID  `db:"api_validation_id"`
	Credentials              sql.NullString `db:"credentials"`
	SushiURL                 sql.NullString `db:"sushi_url"`
	RequestedCoPVersion      sql.NullString `db:"requested_cop_version"`
	RequestedReportCode      sql.NullString `db:"requested_report_code"`
	RequestedExtraAttributes sql.NullString `db:"requested_extra_attributes"`
	RequestedBeginDate       sql.NullTime   `db:"requested_begin_date"`
	RequestedEndDate         sql.NullTime   `db:"requested_end_date"`
	UseShortDates            sql.NullBool   `db:"use_short_dates"`

	PgUserColumns
}

// PgUserColumns are the owner columns joined into validation and core rows.
type PgUserColumns struct {
	OwnerID          uuid.NullUUID  `db:"owner_id"`
	OwnerEmail       sql.NullString `db:"owner_email"`
	OwnerFirstName   sql.NullString `db:"owner_first_name"`
	OwnerLastName    sql.NullString `db:"owner_last_name"`
	OwnerIsAdmin     sql.NullBool   `db:"owner_is_validator_admin"`
	OwnerIsSuperuser sql.NullBool   `db:"owner_is_superuser"`
	OwnerIsActive    sql.NullBool   `db:"owner_is_active"`
}

func (p *PgUserColumns) ToDomain() *domain.User {
	if !p.OwnerID.Valid {
		return nil
	}

	return &domain.User{
		ID:               domain.UserID(p.OwnerID.UUID),
		Email:            p.OwnerEmail.String,
		FirstName:        p.OwnerFirstName.String,
		LastName:         p.OwnerLastName.String,
		IsValidatorAdmin: p.OwnerIsAdmin.Bool,
		IsSuperuser:      p.OwnerIsSuperuser.Bool,
		IsActive:         p.OwnerIsActive.Bool,
	}
}

func (p *PgValidationRow) ToDomain() (*domain.Validation, error) {
	core, err := p.PgValidationCore.ToDomain()
	if err != nil {
		return nil, err
	}
	core.User = p.PgUserColumns.ToDomain()

	v := &domain.Validation{
		ID:       domain.ValidationID(p.ValidationID),
		Core:     *core,
		Filename: p.Filename,
		FilePath: p.FilePath,
		UserNote: p.UserNote,
	}
	if p.ResultData.Valid {
		if err := json.Unmarshal([]byte(p.ResultData.String), &v.ResultData); err != nil {
			return nil, fmt.Errorf("could not unmarshal result data: %w", err)
		}
	}
	if p.PublicID.Valid {
		id := p.PublicID.UUID
		v.PublicID = &id
	}

	if p.APIValidationID.Valid {
		api := &domain.CounterAPIValidation{
			URL:                 p.SushiURL.String,
			RequestedCoPVersion: p.RequestedCoPVersion.String,
			RequestedReportCode: p.RequestedReportCode.String,
			RequestedBeginDate:  nullTimePtr(p.RequestedBeginDate),
			RequestedEndDate:    nullTimePtr(p.RequestedEndDate),
			UseShortDates:       p.UseShortDates.Bool,
		}
		if p.Credentials.Valid {
			if err := json.Unmarshal([]byte(p.Credentials.String), &api.Credentials); err != nil {
				return nil, fmt.Errorf("could not unmarshal credentials: %w", err)
			}
		}
		if p.RequestedExtraAttributes.Valid {
			if err := json.Unmarshal([]byte(p.RequestedExtraAttributes.String), &api.RequestedExtraAttributes); err != nil {
				return nil, fmt.Errorf("could not unmarshal extra attributes: %w", err)
			}
		}
		v.CounterAPI = api
	}

	return v, nil
}

// PgCoreRow is a validation core joined with its owner.
type PgCoreRow struct {
	PgValidationCore
	PgUserColumns
}

func (p *PgCoreRow) ToDomain() (*domain.ValidationCore, error) {
	core, err := p.PgValidationCore.ToDomain()
	if err != nil {
		return nil, err
	}
	core.User = p.PgUserColumns.ToDomain()

	return core, nil
}

type PgValidationMessage struct {
	ID           uuid.UUID `db:"id"            goqu:"skipinsert"`
	ValidationID uuid.UUID `db:"validation_id"`
	Number       int       `db:"number"`
	Severity     int       `db:"severity"`
	Code         string    `db:"code"`
	Location     string    `db:"location"`
	Message      string    `db:"message"`
	Summary      string    `db:"summary"`
	Hint         string    `db:"hint"`
	Data         string    `db:"data"`
}

func (p *PgValidationMessage) ToDomain() domain.ValidationMessage {
	return domain.ValidationMessage{
		ID:           p.ID,
		ValidationID: domain.ValidationID(p.ValidationID),
		Number:       p.Number,
		Severity:     domain.SeverityLevel(p.Severity),
		Code:         p.Code,
		Location:     p.Location,
		Message:      p.Message,
		Summary:      p.Summary,
		Hint:         p.Hint,
		Data:         p.Data,
	}
}

func (p *PgValidationMessage) FromDomain(m domain.ValidationMessage) {
	*p = PgValidationMessage{
		ValidationID: uuid.UUID(m.ValidationID),
		Number:       m.Number,
		Severity:     int(m.Severity),
		Code:         m.Code,
		Location:     m.Location,
		Message:      m.Message,
		Summary:      m.Summary,
		Hint:         m.Hint,
		Data:         m.Data,
	}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time

	return &v
}

func timePtrNull(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}

	return sql.NullTime{Time: *t, Valid: true}
}

func nullBoolPtr(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool

	return &v
}

func boolPtrNull(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}

	return sql.NullBool{Bool: *b, Valid: true}
}
