package domain_test

import (
	"testing"
	"time"

	"countervalidator/pkg/domain"

	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)

	return &t
}

func TestCounterAPIValidation_FullURL(t *testing.T) {
	cases := []struct {
		name     string
		api      domain.CounterAPIValidation
		endpoint string
		want     string
	}{
		{
			name: "report endpoint with dates",
			api: domain.CounterAPIValidation{
				Credentials:         domain.Credentials{"customer_id": "cust", "requestor_id": "req", "api_key": ""},
				URL:                 "https://sushi.example.com/counter",
				RequestedCoPVersion: "5",
				RequestedReportCode: "TR",
				RequestedBeginDate:  date(2024, 1, 1),
				RequestedEndDate:    date(2024, 3, 31),
			},
			endpoint: "/reports/[id]",
			want: "https://sushi.example.com/counter/reports/tr" +
				"?begin_date=2024-01-01&customer_id=cust&end_date=2024-03-31&requestor_id=req",
		},
		{
			name: "short dates and cop prefix",
			api: domain.CounterAPIValidation{
				Credentials:         domain.Credentials{"customer_id": "cust"},
				URL:                 "https://sushi.example.com/",
				RequestedCoPVersion: "5.1",
				RequestedReportCode: "DR",
				RequestedBeginDate:  date(2024, 1, 1),
				UseShortDates:       true,
			},
			endpoint: "/reports/[id]",
			want:     "https://sushi.example.com/r51/reports/dr?begin_date=2024-01&customer_id=cust",
		},
		{
			name: "url already carries the prefix",
			api: domain.CounterAPIValidation{
				URL:                 "https://sushi.example.com/r51/",
				RequestedCoPVersion: "5.1",
			},
			endpoint: "/status",
			want:     "https://sushi.example.com/r51/status",
		},
		{
			name: "extra attributes override credentials",
			api: domain.CounterAPIValidation{
				Credentials:              domain.Credentials{"customer_id": "cust", "platform": "p1"},
				URL:                      "https://sushi.example.com",
				RequestedCoPVersion:      "5",
				RequestedExtraAttributes: map[string]any{"platform": "p2", "attributes_to_show": "Data_Type|YOP"},
			},
			endpoint: "/members",
			want: "https://sushi.example.com/members" +
				"?attributes_to_show=Data_Type%7CYOP&customer_id=cust&platform=p2",
		},
		{
			name: "non string extra attributes",
			api: domain.CounterAPIValidation{
				URL:                 "https://sushi.example.com",
				RequestedCoPVersion: "5",
				RequestedExtraAttributes: map[string]any{
					"flag": true, "none": nil, "list": []any{"a", "b"}, "n": float64(3), "f": 1.5,
					"obj": map[string]any{"k": false},
				},
			},
			endpoint: "/members",
			want: "https://sushi.example.com/members" +
				"?f=1.5&flag=True&list=%5B%27a%27%2C+%27b%27%5D&n=3&none=None&obj=%7B%27k%27%3A+False%7D",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.api.FullURL(c.endpoint))
		})
	}
}

func TestSeverity(t *testing.T) {
	require.Equal(t, domain.SeverityCriticalError, domain.SeverityByLabel("Critical error"))
	require.Equal(t, domain.SeverityUnknown, domain.SeverityByLabel("nope"))
	require.Equal(t, "Warning", domain.SeverityWarning.Label())
	require.Empty(t, domain.SeverityLevel(15).Label())

	level, ok := domain.SeverityByAnyValue("40")
	require.True(t, ok)
	require.Equal(t, domain.SeverityError, level)
	level, ok = domain.SeverityByAnyValue(" Notice ")
	require.True(t, ok)
	require.Equal(t, domain.SeverityNotice, level)
	_, ok = domain.SeverityByAnyValue("41")
	require.False(t, ok)
	_, ok = domain.SeverityByAnyValue("bogus")
	require.False(t, ok)

	require.True(t, domain.IsSeverityLabel(""))
	require.False(t, domain.IsSeverityLabel("passed"))
}
