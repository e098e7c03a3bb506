package validationmodule

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"countervalidator/pkg/domain"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/klauspost/compress/zlib"
)

// ReportInfo describes the report the module validated.
type ReportInfo struct {
	CoPVersion      *string `json:"cop_version"`
	ReportID        *string `json:"report_id"`
	InstitutionName *string `json:"institution_name"`
	Created         *string `json:"created"`
	CreatedBy       *string `json:"created_by"`
	BeginDate       *string `json:"begin_date"`
	EndDate         *string `json:"end_date"`
	Format          string  `json:"format" validate:"omitempty,oneof=tabular json"`
}

// Header is the free form report header echoed by the module.
type Header struct {
	Report map[string]any `json:"report"`
	Result []string       `json:"result"`
}

// Result is the validation outcome of one report.
type Result struct {
	Header     *Header                `json:"header"     validate:"required"`
	ReportInfo *ReportInfo            `json:"reportinfo"`
	Messages   []domain.ModuleMessage `json:"messages"   validate:"required,dive"`
	Result     string                 `json:"result"     validate:"required,severity"`
	Datetime   *string                `json:"datetime"   validate:"required"`
}

// Response is the top level document returned by a validation module.
type Response struct {
	Result *Result `json:"result" validate:"required"`
	Memory int64   `json:"memory"`
	Report *string `json:"report"`

	// ResultData is the decoded "result" object without its messages.
	ResultData map[string]any `json:"-"`
}

// resultFields lists the keys kept in ResultData. Anything else the module
// sends is dropped.
var resultFields = map[string]map[string]bool{ //nolint: gochecknoglobals
	"header": {"report": true, "result": true},
	"reportinfo": {
		"cop_version": true, "report_id": true, "institution_name": true, "created": true,
		"created_by": true, "begin_date": true, "end_date": true, "format": true,
	},
	"result":   nil,
	"datetime": nil,
}

func pickResultData(raw map[string]any) map[string]any {
	out := make(map[string]any, len(resultFields))
	for key, nested := range resultFields {
		value, ok := raw[key]
		if !ok {
			continue
		}
		if obj, isObj := value.(map[string]any); isObj && nested != nil {
			picked := make(map[string]any, len(obj))
			for k, v := range obj {
				if nested[k] {
					picked[k] = v
				}
			}
			value = picked
		}
		out[key] = value
	}

	return out
}

// HasReportInfo reports whether the module described the report, i.e. sent a
// non empty reportinfo object.
func (r *Response) HasReportInfo() bool {
	info, ok := r.ResultData["reportinfo"].(map[string]any)

	return ok && len(info) > 0
}

// CoPVersion returns the reported CoP version or "".
func (r *Response) CoPVersion() string {
	if r.Result.ReportInfo == nil || r.Result.ReportInfo.CoPVersion == nil {
		return ""
	}

	return *r.Result.ReportInfo.CoPVersion
}

// ReportCode returns the reported report id or "".
func (r *Response) ReportCode() string {
	if r.Result.ReportInfo == nil || r.Result.ReportInfo.ReportID == nil {
		return ""
	}

	return *r.Result.ReportInfo.ReportID
}

// SchemaError lists every problem found in a module response.
type SchemaError struct {
	Problems []string
}

func (e *SchemaError) Error() string {
	return strings.Join(e.Problems, "; ")
}

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
	_ = v.RegisterValidation("severity", func(fl validator.FieldLevel) bool {
		return domain.IsSeverityLabel(fl.Field().String())
	})

	return v
}

// Parse decodes raw and checks it against the result schema. Schema problems
// are reported as *SchemaError.
func Parse(raw []byte) (*Response, error) {
	var res Response
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, &SchemaError{Problems: []string{fmt.Sprintf("invalid JSON: %s", err)}}
	}

	if err := validate.Struct(&res); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("could not validate result: %w", err)
		}
		problems := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			ns := strings.TrimPrefix(fe.Namespace(), "Response.")
			problems = append(problems, fmt.Sprintf("%s: failed on '%s'", ns, fe.Tag()))
		}

		return nil, &SchemaError{Problems: problems}
	}

	var generic struct {
		Result map[string]any  `json:"result"`
		Memory json.RawMessage `json:"memory"`
	}
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("could not decode result data: %w", err)
	}
	if string(bytes.TrimSpace(generic.Memory)) == "null" {
		return nil, &SchemaError{Problems: []string{"memory: may not be null"}}
	}
	res.ResultData = pickResultData(generic.Result)

	return &res, nil
}

// DecodeReport turns the base64 encoded, zlib compressed report into its raw bytes.
func DecodeReport(report string) ([]byte, error) {
	compressed, err := base64.StdEncoding.DecodeString(report)
	if err != nil {
		return nil, fmt.Errorf("could not decode base64 report: %w", err)
	}
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("could not open zlib stream: %w", err)
	}
	defer func() {
		_ = zr.Close()
	}()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("could not inflate report: %w", err)
	}

	return out, nil
}
