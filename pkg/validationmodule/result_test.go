package validationmodule_test

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"countervalidator/pkg/validationmodule"

	"github.com/klauspost/compress/zlib"
	"github.com/stretchr/testify/require"
)

const validResult = `{
  "result": {
    "header": {"report": {"Report_ID": "TR"}, "result": ["ok"]},
    "reportinfo": {"cop_version": "5.1", "report_id": "TR", "format": "json", "created": null},
    "messages": [
      {"l": "Error", "m": "Missing value", "s": "Missing value", "p": "cell A1", "h": null, "d": "x"},
      {"l": "Notice", "m": "", "s": "Informational"}
    ],
    "result": "Error",
    "datetime": "2024-01-02 03:04:05"
  },
  "memory": 1024,
  "report": null
}`

func TestParse_valid(t *testing.T) {
	res, err := validationmodule.Parse([]byte(validResult))
	require.NoError(t, err)
	require.EqualValues(t, 1024, res.Memory)
	require.Nil(t, res.Report)
	require.Equal(t, "5.1", res.CoPVersion())
	require.Equal(t, "TR", res.ReportCode())
	require.Len(t, res.Result.Messages, 2)
	require.Equal(t, "Error", res.Result.Messages[0].Level)

	require.NotContains(t, res.ResultData, "messages")
	require.Equal(t, "Error", res.ResultData["result"])
	require.Equal(t, "2024-01-02 03:04:05", res.ResultData["datetime"])
}

func TestParse_missingReportInfo(t *testing.T) {
	res, err := validationmodule.Parse([]byte(`{"result":{"header":{},"messages":[],"result":"Passed","datetime":"x"}}`))
	require.NoError(t, err)
	require.False(t, res.HasReportInfo())
	require.Equal(t, "", res.CoPVersion())
	require.Equal(t, "", res.ReportCode())
	require.Zero(t, res.Memory)

	res, err = validationmodule.Parse([]byte(`{"result":{"header":{},"reportinfo":{},"messages":[],"result":"Passed","datetime":"x"}}`))
	require.NoError(t, err)
	require.False(t, res.HasReportInfo())
}

func TestParse_reportInfoWithNulls(t *testing.T) {
	res, err := validationmodule.Parse([]byte(
		`{"result":{"header":{},"reportinfo":{"cop_version":null},"messages":[],"result":"Passed","datetime":"x"}}`))
	require.NoError(t, err)
	require.True(t, res.HasReportInfo())
	require.Equal(t, "", res.CoPVersion())
}

func TestParse_dropsUnknownKeys(t *testing.T) {
	res, err := validationmodule.Parse([]byte(`{
  "result": {
    "header": {"report": {}, "extra": 1},
    "reportinfo": {"report_id": "DR", "vendor": "x"},
    "messages": [],
    "result": "Passed",
    "datetime": "x",
    "debug": true
  },
  "memory": 3
}`))
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"header":     map[string]any{"report": map[string]any{}},
		"reportinfo": map[string]any{"report_id": "DR"},
		"result":     "Passed",
		"datetime":   "x",
	}, res.ResultData)
}

func TestParse_invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		problem string
	}{
		{"not json", `{`, "invalid JSON"},
		{"no result", `{"memory": 1}`, "result: failed on 'required'"},
		{"bad label", `{"result":{"header":{},"messages":[],"result":"Bad","datetime":"x"}}`, "result.result: failed on 'severity'"},
		{"no datetime", `{"result":{"header":{},"messages":[],"result":"Passed"}}`, "result.datetime: failed on 'required'"},
		{"no header", `{"result":{"messages":[],"result":"Passed","datetime":"x"}}`, "result.header: failed on 'required'"},
		{"bad message level", `{"result":{"header":{},"messages":[{"l":"Meh","m":"","s":""}],"result":"Passed","datetime":"x"}}`, "result.messages[0].l: failed on 'severity'"},
		{"blank message level", `{"result":{"header":{},"messages":[{"l":"","m":"","s":""}],"result":"Passed","datetime":"x"}}`, "result.messages[0].l: failed on 'required'"},
		{"missing summary", `{"result":{"header":{},"messages":[{"l":"Error","m":"x"}],"result":"Passed","datetime":"x"}}`, "result.messages[0].s: failed on 'required'"},
		{"blank result", `{"result":{"header":{},"messages":[],"result":"","datetime":"x"}}`, "result.result: failed on 'required'"},
		{"null memory", `{"result":{"header":{},"messages":[],"result":"Passed","datetime":"x"},"memory":null}`, "memory: may not be null"},
		{"bad format", `{"result":{"header":{},"reportinfo":{"format":"xml"},"messages":[],"result":"Passed","datetime":"x"}}`, "result.reportinfo.format: failed on 'oneof'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validationmodule.Parse([]byte(tt.body))
			require.Error(t, err)
			var se *validationmodule.SchemaError
			require.True(t, errors.As(err, &se))
			require.Contains(t, err.Error(), tt.problem)
		})
	}
}

func TestDecodeReport(t *testing.T) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	_, err := zw.Write([]byte(`{"Report_Header":{}}`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	out, err := validationmodule.DecodeReport(base64.StdEncoding.EncodeToString(buf.Bytes()))
	require.NoError(t, err)
	require.Equal(t, `{"Report_Header":{}}`, string(out))

	_, err = validationmodule.DecodeReport("%%%")
	require.Error(t, err)
	_, err = validationmodule.DecodeReport(base64.StdEncoding.EncodeToString([]byte("not zlib")))
	require.Error(t, err)
}
