package validator_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"countervalidator/internal/notify"
	"countervalidator/pkg/domain"
	mockmodulelock "countervalidator/pkg/modulelock/mock"
	"countervalidator/pkg/serrors"
	mockstorage "countervalidator/pkg/storage/mock"

	"github.com/klauspost/compress/zlib"
	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const moduleURL = "http://module-1/"

const moduleResult = `{
  "result": {
    "header": {"report": {}, "result": []},
    "reportinfo": {"cop_version": "5.1", "report_id": "TR", "format": "json"},
    "messages": [
      {"l": "Warning", "m": "Odd value", "s": "Odd value"},
      {"l": "Error", "m": "Bad value", "s": "Bad value", "h": "fix it"}
    ],
    "result": "Error",
    "datetime": "2024-01-02 03:04:05"
  },
  "memory": 2048%s
}`

func expectLease(e *testEnv) {
	lease := mockmodulelock.NewMockLease(e.ctrl)
	lease.EXPECT().URL().Return(moduleURL).AnyTimes()
	lease.EXPECT().Release(gomock.Any()).Return(nil)
	e.locker.EXPECT().Acquire(gomock.Any()).Return(lease, nil)
}

func expectRunning(e *testEnv, v *domain.Validation) {
	e.st.EXPECT().ValidationByID(gomock.Any(), v.ID).Return(v, nil)
	e.st.EXPECT().UpdateValidation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, got domain.Validation) error {
			if got.Core.Status != domain.ValidationStatusRunning {
				return errors.New("expected running")
			}

			return nil
		})
}

func expectFailure(t *testing.T, e *testEnv, subject string, check func(v domain.Validation)) {
	t.Helper()
	expectWithTx(e, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateValidation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, v domain.Validation) error {
				require.Equal(t, domain.ValidationStatusFailure, v.Core.Status)
				if check != nil {
					check(v)
				}

				return nil
			})
		tx.EXPECT().AddJob(gomock.Any(), gomock.AssignableToTypeOf(notify.AdminsJobArgs{}), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
				require.Equal(t, subject, args.(notify.AdminsJobArgs).Subject)

				return true, nil
			})
	})
}

func TestService_Process_file(t *testing.T) {
	e := newTestEnv(t)
	v := newValidation(newUser())
	v.FilePath = "file_validations/20240101-000000-abcdefgh.TSV"

	expectRunning(e, v)
	expectLease(e)
	e.files.EXPECT().Open(gomock.Any(), v.FilePath).Return(io.NopCloser(strings.NewReader("data")), nil)
	e.modules.EXPECT().ValidateFile(gomock.Any(), moduleURL, "tsv", gomock.Any()).
		Return([]byte(strings.Replace(moduleResult, "%s", "", 1)), nil)
	expectWithTx(e, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteMessages(gomock.Any(), v.ID).Return(nil)
		tx.EXPECT().StoreMessages(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msgs ...domain.ValidationMessage) error {
				require.Len(t, msgs, 2)
				require.Equal(t, 1, msgs[0].Number)
				require.Equal(t, domain.SeverityError, msgs[1].Severity)

				return nil
			})
		tx.EXPECT().UpdateValidation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got domain.Validation) error {
				require.Equal(t, domain.ValidationStatusSuccess, got.Core.Status)
				require.Equal(t, domain.SeverityError, got.Core.ValidationResult)
				require.Equal(t, int64(2048), got.Core.UsedMemory)
				require.Equal(t, "5.1", got.Core.CoPVersion)
				require.Equal(t, "TR", got.Core.ReportCode)
				require.Equal(t, map[string]int{"Warning": 1, "Error": 1}, got.Core.Stats)
				require.NotContains(t, got.ResultData, "messages")

				return nil
			})
	})

	require.NoError(t, e.s.Process(context.Background(), v.ID))
}

func compressedReport(t *testing.T, s string) string {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestService_Process_counterAPIWithReport(t *testing.T) {
	e := newTestEnv(t)
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	v := newValidation(newUser())
	v.FilePath = ""
	v.Core.Created = time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	v.Core.APIEndpoint = domain.DefaultAPIEndpoint
	v.CounterAPI = &domain.CounterAPIValidation{
		Credentials:         domain.Credentials{"customer_id": "c"},
		URL:                 "https://sushi.example.com/",
		RequestedReportCode: "TR",
		RequestedBeginDate:  &begin,
		RequestedEndDate:    &end,
		UseShortDates:       true,
	}

	expectRunning(e, v)
	expectLease(e)
	e.modules.EXPECT().ValidateCounterAPI(gomock.Any(), moduleURL,
		"https://sushi.example.com/reports/tr?begin_date=2024-01&customer_id=c&end_date=2024-01").
		Return([]byte(strings.Replace(moduleResult, "%s",
			`, "report": "`+compressedReport(t, `{"Report_Header":{}}`)+`"`, 1)), nil)
	e.files.EXPECT().Save(gomock.Any(), "report.json", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, r io.Reader) (string, error) {
			b, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, `{"Report_Header":{}}`, string(b))

			return "file_validations/report.json", nil
		})
	expectWithTx(e, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteMessages(gomock.Any(), v.ID).Return(nil)
		tx.EXPECT().StoreMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().UpdateValidation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got domain.Validation) error {
				require.Equal(t, "file_validations/report.json", got.FilePath)
				require.Equal(t, "COUNTER API 2024-02-03 04:05:06", got.Filename)
				require.Equal(t, int64(len(`{"Report_Header":{}}`)), got.Core.FileSize)
				require.NotEmpty(t, got.Core.FileChecksum)

				return nil
			})
	})

	require.NoError(t, e.s.Process(context.Background(), v.ID))
}

func TestService_Process_keepsRequestedVersionWithoutReportInfo(t *testing.T) {
	e := newTestEnv(t)
	v := newValidation(newUser())
	v.FilePath = ""
	v.Core.APIEndpoint = "/status"
	v.Core.CoPVersion = "5.1"
	v.CounterAPI = &domain.CounterAPIValidation{URL: "https://sushi.example.com/"}

	expectRunning(e, v)
	expectLease(e)
	e.modules.EXPECT().ValidateCounterAPI(gomock.Any(), moduleURL, gomock.Any()).
		Return([]byte(`{"result":{"header":{},"messages":[],"result":"Passed","datetime":"x"},"memory":1}`), nil)
	expectWithTx(e, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteMessages(gomock.Any(), v.ID).Return(nil)
		tx.EXPECT().UpdateValidation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, got domain.Validation) error {
				require.Equal(t, domain.ValidationStatusSuccess, got.Core.Status)
				require.Equal(t, "5.1", got.Core.CoPVersion)
				require.Equal(t, domain.SeverityPassed, got.Core.ValidationResult)

				return nil
			})
	})

	require.NoError(t, e.s.Process(context.Background(), v.ID))
}

func TestService_Process_moduleFailure(t *testing.T) {
	e := newTestEnv(t)
	v := newValidation(newUser())

	expectRunning(e, v)
	expectLease(e)
	e.files.EXPECT().Open(gomock.Any(), v.FilePath).Return(io.NopCloser(strings.NewReader("data")), nil)
	e.modules.EXPECT().ValidateFile(gomock.Any(), moduleURL, "json", gomock.Any()).
		Return(nil, serrors.With(serrors.ErrUnavailable, "module down"))
	expectFailure(t, e, "Validation failed", func(got domain.Validation) {
		require.Equal(t, "module down", got.Core.ErrorMessage)
	})

	require.NoError(t, e.s.Process(context.Background(), v.ID))
}

func TestService_Process_invalidResult(t *testing.T) {
	e := newTestEnv(t)
	v := newValidation(newUser())

	expectRunning(e, v)
	expectLease(e)
	e.files.EXPECT().Open(gomock.Any(), v.FilePath).Return(io.NopCloser(strings.NewReader("data")), nil)
	e.modules.EXPECT().ValidateFile(gomock.Any(), moduleURL, "json", gomock.Any()).
		Return([]byte(`{"result": {"messages": []}, "memory": 0}`), nil)
	expectFailure(t, e, "Validation module returned invalid result", func(got domain.Validation) {
		require.Contains(t, got.Core.ErrorMessage, "result.header")
	})

	require.NoError(t, e.s.Process(context.Background(), v.ID))
}

func TestService_Process_updateFailure(t *testing.T) {
	e := newTestEnv(t)
	v := newValidation(newUser())

	expectRunning(e, v)
	expectLease(e)
	e.files.EXPECT().Open(gomock.Any(), v.FilePath).Return(io.NopCloser(strings.NewReader("data")), nil)
	e.modules.EXPECT().ValidateFile(gomock.Any(), moduleURL, "json", gomock.Any()).
		Return([]byte(strings.Replace(moduleResult, "%s", "", 1)), nil)
	e.st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Return(errors.New("db gone"))
	expectFailure(t, e, "Validation update failed", nil)

	require.NoError(t, e.s.Process(context.Background(), v.ID))
}

func TestService_Process_deleted(t *testing.T) {
	e := newTestEnv(t)
	v := newValidation(nil)
	e.st.EXPECT().ValidationByID(gomock.Any(), v.ID).Return(nil, nil)

	require.ErrorIs(t, e.s.Process(context.Background(), v.ID), serrors.ErrNotFound)
}

func TestService_Process_lockError(t *testing.T) {
	e := newTestEnv(t)
	v := newValidation(nil)
	expectRunning(e, v)
	e.locker.EXPECT().Acquire(gomock.Any()).Return(nil, context.DeadlineExceeded)

	require.Error(t, e.s.Process(context.Background(), v.ID))
}

func TestService_Fail(t *testing.T) {
	e := newTestEnv(t)
	v := newValidation(nil)
	e.st.EXPECT().MarkCoreFailed(gomock.Any(), v.ID, strings.Repeat("x", domain.MaxErrorMessageLength)).Return(nil)

	require.NoError(t, e.s.Fail(context.Background(), v.ID, strings.Repeat("x", 2000)))
}
