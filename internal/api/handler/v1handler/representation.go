package v1handler

import (
	"bytes"
	"strconv"
	"time"

	"countervalidator/internal/validator"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/storage"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type userJSON struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func newUserJSON(u *domain.User) *userJSON {
	if u == nil {
		return nil
	}

	return &userJSON{ID: uuid.UUID(u.ID), Email: u.Email, FirstName: u.FirstName, LastName: u.LastName}
}

type currentUserJSON struct {
	userJSON
	IsValidatorAdmin bool `json:"is_validator_admin"`
	IsSuperuser      bool `json:"is_superuser"`
	IsActive         bool `json:"is_active"`
}

type apiKeyJSON struct {
	Prefix     string     `json:"prefix"`
	Created    time.Time  `json:"created"`
	Name       string     `json:"name"`
	Revoked    bool       `json:"revoked"`
	ExpiryDate *time.Time `json:"expiry_date"`
	HasExpired bool       `json:"has_expired"`
}

func newAPIKeyJSON(k *domain.APIKey, now time.Time) apiKeyJSON {
	return apiKeyJSON{
		Prefix:     k.Prefix,
		Created:    k.CreatedAt,
		Name:       k.Name,
		Revoked:    k.Revoked,
		ExpiryDate: k.ExpiryDate,
		HasExpired: k.HasExpired(now),
	}
}

type platformJSON struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Abbrev     string    `json:"abbrev"`
	Deprecated bool      `json:"deprecated"`
}

type platformDetailJSON struct {
	platformJSON
	Reports             []domain.Report `json:"reports"`
	ContentProviderName string          `json:"content_provider_name"`
	Website             string          `json:"website"`
	SushiServices       []uuid.UUID     `json:"sushi_services"`
}

func newPlatformJSON(p *domain.Platform) platformJSON {
	return platformJSON{ID: p.ID, Name: p.Name, Abbrev: p.Abbrev, Deprecated: p.Deprecated}
}

func newPlatformDetailJSON(p *domain.Platform) platformDetailJSON {
	out := platformDetailJSON{
		platformJSON:        newPlatformJSON(p),
		Reports:             p.Reports,
		ContentProviderName: p.ContentProviderName,
		Website:             p.Website,
		SushiServices:       p.SushiServices,
	}
	if out.Reports == nil {
		out.Reports = []domain.Report{}
	}
	if out.SushiServices == nil {
		out.SushiServices = []uuid.UUID{}
	}

	return out
}

type sushiServiceJSON struct {
	ID                     uuid.UUID  `json:"id"`
	CounterRelease         string     `json:"counter_release"`
	URL                    string     `json:"url"`
	Platform               *uuid.UUID `json:"platform"`
	IPAddressAuthorization *bool      `json:"ip_address_authorization"`
	APIKeyRequired         *bool      `json:"api_key_required"`
	PlatformAttrRequired   *bool      `json:"platform_attr_required"`
	RequestorIDRequired    *bool      `json:"requestor_id_required"`
	Deprecated             bool       `json:"deprecated"`
}

func newSushiServiceJSON(s *domain.SushiService) sushiServiceJSON {
	return sushiServiceJSON{
		ID:                     s.ID,
		CounterRelease:         s.CounterRelease,
		URL:                    s.URL,
		Platform:               s.PlatformID,
		IPAddressAuthorization: s.IPAddressAuthorization,
		APIKeyRequired:         s.APIKeyRequired,
		PlatformAttrRequired:   s.PlatformAttrRequired,
		RequestorIDRequired:    s.RequestorIDRequired,
		Deprecated:             s.Deprecated,
	}
}

// validationJSON is the list and create representation. The COUNTER API
// fields are null for file validations.
type validationJSON struct {
	ID               uuid.UUID      `json:"id"`
	FileURL          *string        `json:"file_url"`
	Status           int            `json:"status"`
	Created          time.Time      `json:"created"`
	ExpirationDate   *time.Time     `json:"expiration_date"`
	PublicID         *uuid.UUID     `json:"public_id"`
	Filename         string         `json:"filename"`
	ValidationResult string         `json:"validation_result"`
	ErrorMessage     string         `json:"error_message"`
	FileSize         int64          `json:"file_size"`
	CoPVersion       string         `json:"cop_version"`
	ReportCode       string         `json:"report_code"`
	Stats            map[string]int `json:"stats"`
	APIKeyPrefix     string         `json:"api_key_prefix"`
	DataSource       string         `json:"data_source"`
	UserNote         string         `json:"user_note"`
	APIEndpoint      string         `json:"api_endpoint"`

	Credentials              *domain.Credentials `json:"credentials"`
	URL                      *string             `json:"url"`
	RequestedCoPVersion      *string             `json:"requested_cop_version"`
	RequestedReportCode      *string             `json:"requested_report_code"`
	RequestedExtraAttributes map[string]any      `json:"requested_extra_attributes"`
	RequestedBeginDate       *string             `json:"requested_begin_date"`
	RequestedEndDate         *string             `json:"requested_end_date"`
	UseShortDates            *bool               `json:"use_short_dates"`
}

type validationWithUserJSON struct {
	validationJSON
	User *userJSON `json:"user"`
}

type validationDetailJSON struct {
	validationJSON
	ResultData map[string]any `json:"result_data"`
	User       *userJSON      `json:"user,omitempty"`
	FullURL    string         `json:"full_url"`
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)

	return &s
}

func (h *Handler) newValidationJSON(v *domain.Validation) validationJSON {
	stats := v.Core.Stats
	if stats == nil {
		stats = map[string]int{}
	}
	out := validationJSON{
		ID:               uuid.UUID(v.ID),
		FileURL:          h.deps.Validator.FileURL(v),
		Status:           int(v.Core.Status),
		Created:          v.Core.Created,
		ExpirationDate:   v.Core.ExpirationDate,
		PublicID:         v.PublicID,
		Filename:         v.Filename,
		ValidationResult: v.Core.ValidationResult.Label(),
		ErrorMessage:     v.Core.ErrorMessage,
		FileSize:         v.Core.FileSize,
		CoPVersion:       v.Core.CoPVersion,
		ReportCode:       v.Core.ReportCode,
		Stats:            stats,
		APIKeyPrefix:     v.Core.APIKeyPrefix,
		DataSource:       v.Core.Source(),
		UserNote:         v.UserNote,
		APIEndpoint:      v.Core.APIEndpoint,
	}
	if c := v.CounterAPI; c != nil {
		if c.Credentials != nil {
			creds := c.Credentials
			out.Credentials = &creds
		}
		out.URL = &c.URL
		out.RequestedCoPVersion = &c.RequestedCoPVersion
		out.RequestedReportCode = &c.RequestedReportCode
		out.RequestedExtraAttributes = c.RequestedExtraAttributes
		if out.RequestedExtraAttributes == nil {
			out.RequestedExtraAttributes = map[string]any{}
		}
		out.RequestedBeginDate = dateString(c.RequestedBeginDate)
		out.RequestedEndDate = dateString(c.RequestedEndDate)
		out.UseShortDates = &c.UseShortDates
	}

	return out
}

func (h *Handler) newValidationDetailJSON(v *domain.Validation) validationDetailJSON {
	out := validationDetailJSON{
		validationJSON: h.newValidationJSON(v),
		ResultData:     v.ResultData,
		User:           newUserJSON(v.Core.User),
	}
	if v.IsCounterAPI() {
		out.FullURL = v.CounterAPI.FullURL(v.Core.APIEndpoint)
	}

	return out
}

// newPublicValidationJSON hides the credentials and the full URL.
func (h *Handler) newPublicValidationJSON(v *domain.Validation) validationDetailJSON {
	out := validationDetailJSON{
		validationJSON: h.newValidationJSON(v),
		ResultData:     v.ResultData,
	}
	out.Credentials = nil

	return out
}

type messageJSON struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
	Hint     string `json:"hint"`
	Data     string `json:"data"`
}

func newMessageJSON(m *domain.ValidationMessage) messageJSON {
	return messageJSON{
		Severity: m.Severity.Label(),
		Code:     m.Code,
		Message:  m.Message,
		Location: m.Location,
		Summary:  m.Summary,
		Hint:     m.Hint,
		Data:     m.Data,
	}
}

type coreJSON struct {
	ID               uuid.UUID      `json:"id"`
	CoPVersion       string         `json:"cop_version"`
	ReportCode       string         `json:"report_code"`
	Status           int            `json:"status"`
	ValidationResult string         `json:"validation_result"`
	Created          time.Time      `json:"created"`
	FileSize         int64          `json:"file_size"`
	UsedMemory       int64          `json:"used_memory"`
	Duration         float64        `json:"duration"`
	Stats            map[string]int `json:"stats"`
	ErrorMessage     string         `json:"error_message"`
	Source           string         `json:"source"`
	User             *userJSON      `json:"user"`
}

func newCoreJSON(c *domain.ValidationCore) coreJSON {
	stats := c.Stats
	if stats == nil {
		stats = map[string]int{}
	}

	return coreJSON{
		ID:               uuid.UUID(c.ID),
		CoPVersion:       c.CoPVersion,
		ReportCode:       c.ReportCode,
		Status:           int(c.Status),
		ValidationResult: c.ValidationResult.Label(),
		Created:          c.Created,
		FileSize:         c.FileSize,
		UsedMemory:       c.UsedMemory,
		Duration:         c.Duration,
		Stats:            stats,
		ErrorMessage:     c.ErrorMessage,
		Source:           c.Source(),
		User:             newUserJSON(c.User),
	}
}

// summaryCounts encodes summary stats as a JSON object keeping their order.
type summaryCounts []domain.SummaryStat

func (s summaryCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, stat := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(stat.Summary)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(stat.Count, 10))
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

type statsJSON struct {
	Summary         summaryCounts                `json:"summary"`
	SummarySeverity []domain.SummarySeverityStat `json:"summary_severity"`
}

func newStatsJSON(s *validator.Stats) statsJSON {
	out := statsJSON{Summary: s.Summary, SummarySeverity: s.SummarySeverity}
	if out.SummarySeverity == nil {
		out.SummarySeverity = []domain.SummarySeverityStat{}
	}

	return out
}

// newTimeStatsJSON flattens per-day counts into objects holding a key for
// every severity label.
func newTimeStatsJSON(stats []storage.TimeStat) []map[string]any {
	out := make([]map[string]any, 0, len(stats))
	for _, s := range stats {
		rec := map[string]any{
			"date":  s.Date.Format(time.DateOnly),
			"total": s.Total,
		}
		for _, level := range domain.SeverityLevels() {
			rec[level.Label()] = s.ByResult[level.Label()]
		}
		out = append(out, rec)
	}

	return out
}
