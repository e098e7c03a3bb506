package registry_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"countervalidator/pkg/registry"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func respond(status int, body string) *http.Response {
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body)), Header: make(http.Header)}
}

const platformsJSON = `[{
  "id": "8a8cd8e1-7b52-4d0b-9b3f-5f9e1f7d8c01",
  "name": "Platform A",
  "abbrev": "PA",
  "content_provider_name": "Provider",
  "website": "https://a.example.com",
  "reports": [{"report_id": "TR", "counter_release": "5"}],
  "sushi_services": [{"url": "https://registry.example.com/api/v1/sushi-service/1/"}]
}]`

func TestClient_Platforms(t *testing.T) {
	c := registry.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "https://registry.example.com/api/v1/platform/", r.URL.String())

		return respond(http.StatusOK, platformsJSON), nil
	})}, "https://registry.example.com/")

	platforms, err := c.Platforms(context.Background())
	require.NoError(t, err)
	require.Len(t, platforms, 1)
	p := platforms[0].ToDomain()
	require.Equal(t, "Platform A", p.Name)
	require.Equal(t, "TR", p.Reports[0].ReportID)
	require.Equal(t, "https://registry.example.com/api/v1/sushi-service/1/", platforms[0].SushiServices[0].URL)
}

func TestClient_Platforms_errors(t *testing.T) {
	c := registry.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusBadGateway, "down"), nil
	})}, "https://registry.example.com")
	_, err := c.Platforms(context.Background())
	require.ErrorContains(t, err, "non OK status code (502)")

	c = registry.New(&http.Client{Transport: rtFunc(func(*http.Request) (*http.Response, error) {
		return respond(http.StatusOK, `[{"id": "8a8cd8e1-7b52-4d0b-9b3f-5f9e1f7d8c01"}]`), nil
	})}, "https://registry.example.com")
	_, err = c.Platforms(context.Background())
	require.ErrorContains(t, err, "invalid platform")
}

func TestClient_SushiService(t *testing.T) {
	c := registry.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "https://registry.example.com/api/v1/sushi-service/1/", r.URL.String())

		return respond(http.StatusOK, `{
			"id": "1f0c3b1e-1111-4c1a-8d7e-0a0b0c0d0e0f",
			"counter_release": "5.1",
			"url": "https://sushi.example.com/r51",
			"api_key_required": true,
			"requestor_id_required": null
		}`), nil
	})}, "https://registry.example.com")

	s, err := c.SushiService(context.Background(), "https://registry.example.com/api/v1/sushi-service/1/")
	require.NoError(t, err)
	require.Equal(t, "5.1", s.CounterRelease)
	require.NotNil(t, s.APIKeyRequired)
	require.True(t, *s.APIKeyRequired)
	require.Nil(t, s.RequestorIDRequired)
}
