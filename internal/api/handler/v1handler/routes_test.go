package v1handler_test

import (
	"bytes"
	"context"
	"crypto/rsa"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"countervalidator/internal/account"
	mockaccount "countervalidator/internal/account/mock"
	"countervalidator/internal/api/handler/v1handler"
	mockregistry "countervalidator/internal/registry/mock"
	"countervalidator/internal/validator"
	mockvalidator "countervalidator/internal/validator/mock"
	"countervalidator/pkg/controller"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testEnv struct {
	accounts   *mockaccount.MockService
	registry   *mockregistry.MockService
	validator  *mockvalidator.MockService
	privateKey *rsa.PrivateKey
	router     http.Handler
}

func newTestEnv(t *testing.T, throttle *controller.Throttle) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	priv, pubPEM := genRSAKeys(t)
	env := &testEnv{
		accounts:   mockaccount.NewMockService(ctrl),
		registry:   mockregistry.NewMockService(ctrl),
		validator:  mockvalidator.NewMockService(ctrl),
		privateKey: priv,
	}
	h := v1handler.New(v1handler.Deps{
		Account:        env.accounts,
		Registry:       env.registry,
		Validator:      env.validator,
		MaxUploadBytes: 1 << 20,
	})
	env.router = h.Routes(newSecHandlerForTest(t, pubPEM), throttle)
	env.validator.EXPECT().FileURL(gomock.Any()).Return(nil).AnyTimes()

	return env
}

// login makes the bearer token of user valid for the next requests.
func (e *testEnv) login(t *testing.T, user *domain.User) string {
	t.Helper()
	e.accounts.EXPECT().User(gomock.Any(), user.ID).Return(user, nil).AnyTimes()
	now := time.Now()

	return "Bearer " + signJWTRS256(t, e.privateKey, user.ID.String(), now, now.Add(time.Hour))
}

func (e *testEnv) do(t *testing.T, method, target, auth string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func testUser(verified bool) *domain.User {
	return &domain.User{
		ID:            domain.UserID(uuid.New()),
		Email:         "user@example.com",
		FirstName:     "Jane",
		LastName:      "Doe",
		IsActive:      true,
		EmailVerified: verified,
	}
}

func testValidation(owner *domain.User) *domain.Validation {
	uid := owner.ID

	return &domain.Validation{
		ID: domain.ValidationID(uuid.New()),
		Core: domain.ValidationCore{
			ID:               domain.CoreID(uuid.New()),
			Created:          time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
			Status:           domain.ValidationStatusSuccess,
			UserID:           &uid,
			User:             owner,
			CoPVersion:       "5.1",
			ReportCode:       "TR",
			ValidationResult: domain.SeverityWarning,
			Stats:            map[string]int{"Warning": 2},
		},
		Filename: "report.json",
		UserNote: "note",
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t, nil)
	env.accounts.EXPECT().Login(gomock.Any(), "a@b.c", "secret").Return("tkn", nil)

	rec := env.do(t, http.MethodPost, "/core/login/", "", bytes.NewBufferString(`{"email":"a@b.c","password":"secret"}`), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "tkn", decode(t, rec)["token"])
}

func TestLogin_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t, nil)
	env.accounts.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", serrors.With(serrors.ErrUnauthorized, "invalid email or password"))

	rec := env.do(t, http.MethodPost, "/core/login", "", bytes.NewBufferString(`{"email":"x","password":"y"}`), "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid email or password", decode(t, rec)["message"])
}

func TestLogin_BadJSON(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/core/login", "", bytes.NewBufferString(`{`), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuth_InvalidHeader(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/core/user/", "Bearer nope", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodGet, "/core/user/", "Basic abc", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCurrentUser(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(true)
	auth := env.login(t, u)

	rec := env.do(t, http.MethodGet, "/core/user/", auth, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, u.Email, body["email"])
	require.Equal(t, false, body["is_validator_admin"])
	require.Equal(t, true, body["is_active"])

	rec = env.do(t, http.MethodGet, "/core/user/", "", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeys(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(true)
	auth := env.login(t, u)
	past := time.Now().Add(-time.Hour)

	env.accounts.EXPECT().APIKeys(gomock.Any(), u.ID).Return([]domain.APIKey{
		{Prefix: "AAAAAAAA", Name: "ci"},
		{Prefix: "BBBBBBBB", Name: "old", ExpiryDate: &past},
	}, nil)
	rec := env.do(t, http.MethodGet, "/core/api-key/", auth, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var keys []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &keys))
	require.Len(t, keys, 2)
	require.Equal(t, false, keys[0]["has_expired"])
	require.Equal(t, true, keys[1]["has_expired"])

	env.accounts.EXPECT().CreateAPIKey(gomock.Any(), u.ID, "new").
		Return(&domain.APIKey{Prefix: "CCCCCCCC"}, "CCCCCCCC.secret", nil)
	rec = env.do(t, http.MethodPost, "/core/api-key/", auth, bytes.NewBufferString(`{"name":"new"}`), "")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "CCCCCCCC.secret", decode(t, rec)["key"])

	env.accounts.EXPECT().RevokeAPIKey(gomock.Any(), u.ID, "AAAAAAAA").
		Return(nil, serrors.With(serrors.ErrBadRequest, "This API key has already been revoked"))
	rec = env.do(t, http.MethodDelete, "/core/api-key/AAAAAAAA/", auth, nil, "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "This API key has already been revoked", decode(t, rec)["message"])
}

func TestAPIKeyAuth_Throttled(t *testing.T) {
	env := newTestEnv(t, controller.NewThrottle(1))
	u := testUser(true)
	key := &domain.APIKey{Prefix: "AAAAAAAA", UserID: u.ID}
	env.accounts.EXPECT().AuthenticateAPIKey(gomock.Any(), "AAAAAAAA.secret").Return(u, key, nil).Times(2)
	env.accounts.EXPECT().APIKeys(gomock.Any(), u.ID).Return(nil, nil)

	rec := env.do(t, http.MethodGet, "/core/api-key/", "Api-Key AAAAAAAA.secret", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/core/api-key/", "Api-Key AAAAAAAA.secret", nil, "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestPlatforms(t *testing.T) {
	env := newTestEnv(t, nil)
	auth := env.login(t, testUser(false))
	id := uuid.New()

	env.registry.EXPECT().Platforms(gomock.Any()).Return([]domain.Platform{{ID: id, Name: "P", Abbrev: "p"}}, nil)
	rec := env.do(t, http.MethodGet, "/counter/platform/", auth, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id":"`+id.String()+`","name":"P","abbrev":"p","deprecated":false}]`, rec.Body.String())

	env.registry.EXPECT().Platform(gomock.Any(), id).Return(&domain.Platform{ID: id, Name: "P"}, nil)
	rec = env.do(t, http.MethodGet, "/counter/platform/"+id.String()+"/", auth, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	require.Equal(t, []any{}, body["reports"])
	require.Equal(t, []any{}, body["sushi_services"])

	rec = env.do(t, http.MethodGet, "/counter/platform/not-a-uuid/", auth, nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/counter/sushi/", "", nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func multipartBody(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if filename != "" {
		fw, err := mw.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("user_note", "my note"))
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestCreateFileValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(true)
	auth := env.login(t, u)
	v := testValidation(u)

	env.validator.EXPECT().CreateFile(gomock.Any(), validator.Actor{User: u}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ validator.Actor, upload validator.FileUpload) (*domain.Validation, error) {
			require.Equal(t, "tr.json", upload.Filename)
			require.Equal(t, "my note", upload.UserNote)
			content, err := io.ReadAll(upload.Body)
			require.NoError(t, err)
			require.Equal(t, `{"a":1}`, string(content))

			return v, nil
		})

	body, ct := multipartBody(t, "tr.json", `{"a":1}`)
	rec := env.do(t, http.MethodPost, "/validations/validation/file/", auth, body, ct)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := decode(t, rec)
	require.Equal(t, uuid.UUID(v.ID).String(), out["id"])
	require.Equal(t, "Warning", out["validation_result"])
	require.Equal(t, "file", out["data_source"])
	require.Nil(t, out["url"])
	require.Nil(t, out["credentials"])
}

func TestCreateFileValidation_MissingFile(t *testing.T) {
	env := newTestEnv(t, nil)
	auth := env.login(t, testUser(true))

	body, ct := multipartBody(t, "", "")
	rec := env.do(t, http.MethodPost, "/validations/validation/file/", auth, body, ct)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, decode(t, rec)["fields"], "file")
}

func TestCreateFileValidation_Unverified(t *testing.T) {
	env := newTestEnv(t, nil)
	auth := env.login(t, testUser(false))

	body, ct := multipartBody(t, "tr.json", `{}`)
	rec := env.do(t, http.MethodPost, "/validations/validation/file/", auth, body, ct)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateCounterAPIValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(true)
	auth := env.login(t, u)
	v := testValidation(u)
	begin := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	v.Core.SushiCredentialsChecksum = "abc"
	v.Core.APIEndpoint = domain.DefaultAPIEndpoint
	v.CounterAPI = &domain.CounterAPIValidation{
		Credentials:         domain.Credentials{"customer_id": "c"},
		URL:                 "https://sushi.example.com/",
		RequestedCoPVersion: "5.1",
		RequestedReportCode: "TR",
		RequestedBeginDate:  &begin,
	}

	env.validator.EXPECT().CreateCounterAPI(gomock.Any(), validator.Actor{User: u}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ validator.Actor, req validator.CounterAPIRequest) (*domain.Validation, error) {
			require.Equal(t, "https://sushi.example.com/", req.URL)
			require.Equal(t, "c", req.Credentials["customer_id"])

			return v, nil
		})
	rec := env.do(t, http.MethodPost, "/validations/counter-api-validation/", auth,
		bytes.NewBufferString(`{"url":"https://sushi.example.com/","cop_version":"5.1","credentials":{"customer_id":"c"}}`), "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	out := decode(t, rec)
	require.Equal(t, "counter_api", out["data_source"])
	require.Equal(t, "2025-01-01", out["requested_begin_date"])
	require.Nil(t, out["requested_end_date"])
	require.Equal(t, map[string]any{}, out["requested_extra_attributes"])
}

func TestValidations_Pagination(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(false)
	auth := env.login(t, u)

	env.validator.EXPECT().Validations(gomock.Any(), u, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.User, f storage.ValidationFilter) (storage.ValidationPage, error) {
			require.Equal(t, uint(2), f.Limit)
			require.Equal(t, uint(2), f.Offset)
			require.Equal(t, "filename", f.OrderBy)
			require.True(t, f.OrderDesc)
			require.Equal(t, []domain.SeverityLevel{domain.SeverityWarning, domain.SeverityError}, f.ValidationResults)
			require.Equal(t, []string{domain.SourceFile}, f.DataSources)

			return storage.ValidationPage{Validations: []domain.Validation{*testValidation(u), *testValidation(u)}, Count: 5}, nil
		})
	rec := env.do(t, http.MethodGet,
		"/validations/validation/?page=2&page_size=2&order_by=filename&order_desc=True&validation_result=Warning,40&data_source=file,bogus",
		auth, nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	out := decode(t, rec)
	require.EqualValues(t, 5, out["count"])
	require.Len(t, out["results"], 2)
	require.Contains(t, out["next"], "page=3")
	require.NotContains(t, out["previous"], "page=")
}

func TestValidations_PageOutOfRange(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(false)
	auth := env.login(t, u)

	env.validator.EXPECT().Validations(gomock.Any(), u, gomock.Any()).Return(storage.ValidationPage{Count: 1}, nil)
	rec := env.do(t, http.MethodGet, "/validations/validation/?page=3", auth, nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = env.do(t, http.MethodGet, "/validations/validation/?page=abc", auth, nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAllValidations_AdminOnly(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.do(t, http.MethodGet, "/validations/validation/all/", env.login(t, testUser(true)), nil, "")
	require.Equal(t, http.StatusForbidden, rec.Code)

	admin := testUser(true)
	admin.IsValidatorAdmin = true
	owner := testUser(true)
	env.validator.EXPECT().AllValidations(gomock.Any(), admin, gomock.Any()).
		Return(storage.ValidationPage{Validations: []domain.Validation{*testValidation(owner)}, Count: 1}, nil)
	rec = env.do(t, http.MethodGet, "/validations/validation/all/", env.login(t, admin), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	results := decode(t, rec)["results"].([]any)
	require.Equal(t, owner.Email, results[0].(map[string]any)["user"].(map[string]any)["email"])
}

func TestValidationDetail(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(false)
	v := testValidation(u)
	v.ResultData = map[string]any{"result": "Warning"}

	env.validator.EXPECT().Validation(gomock.Any(), gomock.Nil(), uuid.UUID(v.ID)).Return(v, nil)
	rec := env.do(t, http.MethodGet, "/validations/validation/"+v.ID.String()+"/", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	require.Equal(t, "", out["full_url"])
	require.Equal(t, map[string]any{"result": "Warning"}, out["result_data"])

	other := uuid.New()
	env.validator.EXPECT().Validation(gomock.Any(), gomock.Nil(), other).Return(nil, serrors.ErrNotFound)
	rec = env.do(t, http.MethodGet, "/validations/validation/"+other.String()+"/", "", nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(false)
	id := uuid.New()

	env.validator.EXPECT().Delete(gomock.Any(), u, domain.ValidationID(id)).Return(nil)
	rec := env.do(t, http.MethodDelete, "/validations/validation/"+id.String()+"/", env.login(t, u), nil, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.String())
}

func TestValidationStats_OrderedSummary(t *testing.T) {
	env := newTestEnv(t, nil)
	id := uuid.New()

	env.validator.EXPECT().Stats(gomock.Any(), gomock.Nil(), id).Return(&validator.Stats{
		Summary: []domain.SummaryStat{{Summary: "zeta", Count: 3}, {Summary: "alpha", Count: 1}},
		SummarySeverity: []domain.SummarySeverityStat{
			{Summary: "zeta", Severity: "Error", Count: 3},
		},
	}, nil)
	rec := env.do(t, http.MethodGet, "/validations/validation/"+id.String()+"/stats/", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t,
		`{"summary":{"zeta":3,"alpha":1},"summary_severity":[{"summary":"zeta","severity":"Error","count":3}]}`,
		string(bytes.TrimSpace(rec.Body.Bytes())))
}

func TestPublishValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	u := testUser(false)
	v := testValidation(u)
	pub := uuid.New()
	v.PublicID = &pub

	env.validator.EXPECT().Publish(gomock.Any(), u, v.ID).Return(v, nil)
	rec := env.do(t, http.MethodPost, "/validations/validation/"+v.ID.String()+"/publish/", env.login(t, u), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, pub.String(), decode(t, rec)["public_id"])
}

func TestPublicValidation(t *testing.T) {
	env := newTestEnv(t, nil)
	v := testValidation(testUser(false))
	pub := uuid.New()
	v.PublicID = &pub
	v.Core.SushiCredentialsChecksum = "abc"
	v.CounterAPI = &domain.CounterAPIValidation{Credentials: domain.Credentials{"customer_id": "secret"}, URL: "https://x.org/"}

	env.validator.EXPECT().PublicValidation(gomock.Any(), pub).Return(v, nil)
	rec := env.do(t, http.MethodGet, "/validations/public/validation/"+pub.String()+"/", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	out := decode(t, rec)
	require.Nil(t, out["credentials"])
	require.Equal(t, "", out["full_url"])
	require.NotContains(t, out, "user")

	rec = env.do(t, http.MethodGet, "/validations/public/validation/", "", nil, "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"detail":"Listing public validations is not allowed."}`, rec.Body.String())
}

func TestPublicValidation_InactiveUserIsAnonymous(t *testing.T) {
	env := newTestEnv(t, nil)
	inactive := testUser(true)
	inactive.IsActive = false
	now := time.Now()
	auth := "Bearer " + signJWTRS256(t, env.privateKey, inactive.ID.String(), now, now.Add(time.Hour))
	env.accounts.EXPECT().User(gomock.Any(), inactive.ID).Return(nil, account.ErrInactiveUser).AnyTimes()

	v := testValidation(testUser(false))
	pub := uuid.New()
	v.PublicID = &pub
	env.validator.EXPECT().PublicValidation(gomock.Any(), pub).Return(v, nil)

	rec := env.do(t, http.MethodGet, "/validations/public/validation/"+pub.String()+"/", auth, nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = env.do(t, http.MethodGet, "/core/user/", auth, nil, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMessages(t *testing.T) {
	env := newTestEnv(t, nil)
	id := uuid.New()

	env.validator.EXPECT().Messages(gomock.Any(), gomock.Nil(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *domain.User, _ uuid.UUID, f storage.MessageFilter) (storage.MessagePage, error) {
			require.Equal(t, []domain.SeverityLevel{domain.SeverityError}, f.Severities)
			require.Equal(t, "", f.OrderBy)
			require.Equal(t, "foo", f.Search)

			return storage.MessagePage{Messages: []domain.ValidationMessage{{Number: 1, Severity: domain.SeverityError, Message: "m"}}, Count: 1}, nil
		})
	rec := env.do(t, http.MethodGet, "/validations/validation/"+id.String()+"/messages/?severity=Error&order_by=bogus&search=foo", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	results := decode(t, rec)["results"].([]any)
	require.Equal(t, "Error", results[0].(map[string]any)["severity"])
}

func TestCoreTimeStats(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := testUser(true)
	admin.IsSuperuser = true

	env.validator.EXPECT().CoreTimeStats(gomock.Any(), admin, gomock.Nil()).Return([]storage.TimeStat{{
		Date:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Total:    2,
		ByResult: map[string]int64{"Warning": 2},
	}}, nil)
	rec := env.do(t, http.MethodGet, "/validations/validation-core/time-stats/", env.login(t, admin), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, "2025-03-01", out[0]["date"])
	require.EqualValues(t, 2, out[0]["Warning"])
	require.EqualValues(t, 0, out[0]["Fatal error"])

	rec = env.do(t, http.MethodGet, "/validations/validation-core/stats/?user=nope", env.login(t, admin), nil, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQueue(t *testing.T) {
	env := newTestEnv(t, nil)
	admin := testUser(true)
	admin.IsValidatorAdmin = true

	env.validator.EXPECT().QueueStatus(gomock.Any(), admin).Return(&validator.QueueStatus{Queued: 3, Running: 1, Workers: 2}, nil)
	rec := env.do(t, http.MethodGet, "/validations/queue/", env.login(t, admin), nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"queued":3,"running":1,"workers":2}`, rec.Body.String())
}
