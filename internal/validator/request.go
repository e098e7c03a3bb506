package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/serrors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator() //nolint: gochecknoglobals

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "url":
		return "Enter a valid URL."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}

// parseRequestDate accepts YYYY-MM-DD only. Month precision is requested with use_short_dates.
func parseRequestDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil //nolint: nilnil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, errors.New("Date has wrong format. Use one of these formats instead: YYYY-MM-DD.") //nolint: stylecheck
	}

	return &t, nil
}

var credentialKeys = []string{ //nolint: gochecknoglobals
	domain.CredentialRequestorID, domain.CredentialCustomerID, domain.CredentialAPIKey, domain.CredentialPlatform,
}

// cleanCredentials keeps the known credential keys with their trimmed values.
// Blank values are kept, except an empty platform which is dropped.
func cleanCredentials(in map[string]string) domain.Credentials {
	out := domain.Credentials{}
	for _, k := range credentialKeys {
		v, ok := in[k]
		if !ok {
			continue
		}
		v = strings.TrimSpace(v)
		if k == domain.CredentialPlatform && v == "" {
			continue
		}
		out[k] = v
	}

	return out
}

// credentialsRequired tells whether the endpoint needs SUSHI credentials. Only
// /status of CoP 5.1 and later is open.
func credentialsRequired(apiEndpoint, copVersion string) bool {
	return apiEndpoint != "/status" || copVersion < "5.1"
}

// checkCounterAPIRequest validates req, applies defaults and returns the
// parameters to store.
func checkCounterAPIRequest(req *CounterAPIRequest) (*domain.CounterAPIValidation, error) {
	req.URL = strings.TrimSpace(req.URL)
	if req.APIEndpoint == "" {
		req.APIEndpoint = domain.DefaultAPIEndpoint
	}
	if req.ExtraAttributes == nil {
		req.ExtraAttributes = map[string]any{}
	}

	fields := serrors.NewFieldError()
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("could not validate request: %w", err)
		}
		for _, fe := range verrs {
			fields.Add(fe.Field(), fieldMessage(fe))
		}
	}

	if _, ok := fields.Fields["url"]; !ok {
		if err := CheckURL(req.URL); err != nil {
			fields.Add("url", "Enter a valid URL.")
		}
	}

	begin, err := parseRequestDate(req.BeginDate)
	if err != nil {
		fields.Add("begin_date", err.Error())
	}
	end, err := parseRequestDate(req.EndDate)
	if err != nil {
		fields.Add("end_date", err.Error())
	}

	if req.APIEndpoint == domain.DefaultAPIEndpoint {
		for attr, val := range map[string]string{
			"cop_version": req.CoPVersion,
			"begin_date":  req.BeginDate,
			"end_date":    req.EndDate,
			"report_code": req.ReportCode,
		} {
			if val == "" {
				fields.Add(attr, attr+" is required if api_endpoint is "+domain.DefaultAPIEndpoint)
			}
		}
	}

	var credentials domain.Credentials
	if req.Credentials != nil {
		credentials = cleanCredentials(req.Credentials)
		if credentials[domain.CredentialCustomerID] == "" {
			fields.Add("credentials", domain.CredentialCustomerID+" is required")
		}
	} else if credentialsRequired(req.APIEndpoint, req.CoPVersion) {
		fields.Add("credentials", "Credentials are required for this endpoint")
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	return &domain.CounterAPIValidation{
		Credentials:              credentials,
		URL:                      req.URL,
		RequestedCoPVersion:      req.CoPVersion,
		RequestedReportCode:      req.ReportCode,
		RequestedExtraAttributes: req.ExtraAttributes,
		RequestedBeginDate:       begin,
		RequestedEndDate:         end,
		UseShortDates:            req.UseShortDates,
	}, nil
}
