package v1handler

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/storage"

	"github.com/google/uuid"
)

func splitList(raw string) []string {
	var out []string
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}

func truthy(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on", "desc":
		return true
	default:
		return false
	}
}

// optionalBool parses a truthy/falsy value; anything else disables the filter.
func optionalBool(raw string) *bool {
	var b bool
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "yes", "on":
		b = true
	case "false", "0", "no", "off":
		b = false
	default:
		return nil
	}

	return &b
}

func severities(raw string) []domain.SeverityLevel {
	var out []domain.SeverityLevel
	for _, v := range splitList(raw) {
		if level, ok := domain.SeverityByAnyValue(v); ok {
			out = append(out, level)
		}
	}

	return out
}

func dataSources(raw string) []string {
	var out []string
	for _, v := range splitList(raw) {
		if v == domain.SourceFile || v == domain.SourceCounterAPI {
			out = append(out, v)
		}
	}

	return out
}

func orderBy(raw string, allowed []string) string {
	if slices.Contains(allowed, raw) {
		return raw
	}

	return ""
}

// dayRange turns date=YYYY-MM-DD in the given IANA timezone into a half open
// interval. An invalid date disables the filter; an invalid timezone means UTC.
func dayRange(date, timezone string) (*time.Time, *time.Time) {
	if date == "" {
		return nil, nil
	}
	loc := time.UTC
	if timezone != "" {
		if l, err := time.LoadLocation(timezone); err == nil {
			loc = l
		}
	}
	from, err := time.ParseInLocation(time.DateOnly, date, loc)
	if err != nil {
		return nil, nil
	}
	to := from.AddDate(0, 0, 1)

	return &from, &to
}

func validationFilter(r *http.Request, p pageRequest) storage.ValidationFilter {
	q := r.URL.Query()
	f := storage.ValidationFilter{
		ValidationResults: severities(q.Get("validation_result")),
		CoPVersions:       splitList(q.Get("cop_version")),
		ReportCodes:       splitList(q.Get("report_code")),
		APIEndpoints:      splitList(q.Get("api_endpoint")),
		DataSources:       dataSources(q.Get("data_source")),
		Published:         optionalBool(q.Get("published")),
		Search:            strings.TrimSpace(q.Get("search")),
		OrderBy:           orderBy(q.Get("order_by"), storage.ValidationOrderFields),
		OrderDesc:         truthy(q.Get("order_desc")),
		Offset:            p.Offset(),
		Limit:             p.Limit(),
	}
	f.CreatedFrom, f.CreatedTo = dayRange(q.Get("date"), q.Get("timezone"))

	return f
}

func messageFilter(r *http.Request, p pageRequest) storage.MessageFilter {
	q := r.URL.Query()

	return storage.MessageFilter{
		Severities: severities(q.Get("severity")),
		Search:     strings.TrimSpace(q.Get("search")),
		OrderBy:    orderBy(q.Get("order_by"), storage.MessageOrderFields),
		OrderDesc:  truthy(q.Get("order_desc")),
		Offset:     p.Offset(),
		Limit:      p.Limit(),
	}
}

func coreFilter(r *http.Request, p pageRequest) storage.CoreFilter {
	q := r.URL.Query()

	return storage.CoreFilter{
		ValidationResults: severities(q.Get("validation_result")),
		CoPVersions:       splitList(q.Get("cop_version")),
		ReportCodes:       splitList(q.Get("report_code")),
		APIEndpoints:      splitList(q.Get("api_endpoint")),
		DataSources:       dataSources(q.Get("data_source")),
		Search:            strings.TrimSpace(q.Get("search")),
		OrderBy:           orderBy(q.Get("order_by"), storage.CoreOrderFields),
		OrderDesc:         truthy(q.Get("order_desc")),
		Offset:            p.Offset(),
		Limit:             p.Limit(),
	}
}

// statsUser reads the optional user filter of core statistics. A malformed
// id can match no user, so it is reported as not found.
func statsUser(r *http.Request) (*domain.UserID, error) {
	raw := r.URL.Query().Get("user")
	if raw == "" {
		return nil, nil //nolint: nilnil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, errUserNotFound
	}
	uid := domain.UserID(id)

	return &uid, nil
}
