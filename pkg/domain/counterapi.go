package domain

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Credential keys accepted for COUNTER API requests.
const (
	CredentialRequestorID = "requestor_id"
	CredentialCustomerID  = "customer_id"
	CredentialAPIKey      = "api_key"
	CredentialPlatform    = "platform"
)

// DefaultAPIEndpoint is the COUNTER API endpoint used when none is requested.
const DefaultAPIEndpoint = "/reports/[id]"

// copToURLPrefix lists path prefixes some CoP versions require in front of the endpoint.
var copToURLPrefix = map[string]string{"5.1": "r51"} //nolint: gochecknoglobals

// Credentials are the SUSHI credentials sent as query parameters.
type Credentials map[string]string

// CounterAPIValidation holds the request parameters of a COUNTER API validation.
type CounterAPIValidation struct {
	// Credentials is nil when the endpoint does not need any.
	Credentials              Credentials
	URL                      string
	RequestedCoPVersion      string
	RequestedReportCode      string
	RequestedExtraAttributes map[string]any
	RequestedBeginDate       *time.Time
	RequestedEndDate         *time.Time
	UseShortDates            bool
}

func (c *CounterAPIValidation) formatDate(t time.Time) string {
	if c.UseShortDates {
		return t.Format("2006-01")
	}

	return t.Format(time.DateOnly)
}

// queryValue renders a JSON decoded extra attribute the way SUSHI servers
// have always received it: strings verbatim, anything else in literal
// notation (True, None, ['a', 'b'], {'k': 1}).
func queryValue(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	return literal(v)
}

func literal(v any) string {
	switch tv := v.(type) {
	case nil:
		return "None"
	case bool:
		if tv {
			return "True"
		}

		return "False"
	case string:
		if strings.Contains(tv, "'") && !strings.Contains(tv, `"`) {
			return `"` + tv + `"`
		}

		return "'" + strings.ReplaceAll(strings.ReplaceAll(tv, `\`, `\\`), "'", `\'`) + "'"
	case float64:
		if tv == math.Trunc(tv) && math.Abs(tv) < 1e16 {
			return strconv.FormatFloat(tv, 'f', 0, 64)
		}

		return strconv.FormatFloat(tv, 'g', -1, 64)
	case []any:
		parts := make([]string, len(tv))
		for i, item := range tv {
			parts[i] = literal(item)
		}

		return "[" + strings.Join(parts, ", ") + "]"
	case map[string]any:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = literal(k) + ": " + literal(tv[k])
		}

		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return fmt.Sprint(tv)
	}
}

// FullURL builds the SUSHI request URL for the given API endpoint. Query
// parameters are the non-empty credentials, the requested dates and the extra
// attributes, encoded in key order.
func (c *CounterAPIValidation) FullURL(apiEndpoint string) string {
	params := url.Values{}
	for k, v := range c.Credentials {
		if v != "" {
			params.Set(k, v)
		}
	}
	if c.RequestedBeginDate != nil {
		params.Set("begin_date", c.formatDate(*c.RequestedBeginDate))
	}
	if c.RequestedEndDate != nil {
		params.Set("end_date", c.formatDate(*c.RequestedEndDate))
	}
	for k, v := range c.RequestedExtraAttributes {
		params.Set(k, queryValue(v))
	}

	path := strings.TrimLeft(apiEndpoint, "/")
	if path == "reports/[id]" {
		path = "reports/" + strings.ToLower(c.RequestedReportCode)
	}
	if prefix := copToURLPrefix[c.RequestedCoPVersion]; prefix != "" &&
		!strings.HasSuffix(strings.TrimRight(c.URL, "/"), prefix) {
		path = prefix + "/" + path
	}

	base := c.URL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	full := base + path
	if b, err := url.Parse(base); err == nil {
		if ref, err := url.Parse(path); err == nil {
			full = b.ResolveReference(ref).String()
		}
	}

	if len(params) > 0 {
		full += "?" + params.Encode()
	}

	return full
}
