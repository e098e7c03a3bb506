package v1handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"countervalidator/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestDayRange(t *testing.T) {
	from, to := dayRange("2025-03-01", "Europe/Prague")
	require.NotNil(t, from)
	require.Equal(t, time.Date(2025, 2, 28, 23, 0, 0, 0, time.UTC), from.UTC())
	require.Equal(t, 24*time.Hour, to.Sub(*from))

	from, _ = dayRange("2025-03-01", "Mars/Olympus")
	require.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), from.UTC())

	from, to = dayRange("01.03.2025", "")
	require.Nil(t, from)
	require.Nil(t, to)
}

func TestSeverities(t *testing.T) {
	require.Equal(t,
		[]domain.SeverityLevel{domain.SeverityPassed, domain.SeverityCriticalError},
		severities("Passed, 50,nonsense,7"))
	require.Nil(t, severities(""))
}

func TestTruthyAndOptionalBool(t *testing.T) {
	for _, v := range []string{"true", "1", "True", "desc"} {
		require.True(t, truthy(v), v)
	}
	require.False(t, truthy("asc"))

	require.True(t, *optionalBool("yes"))
	require.False(t, *optionalBool("False"))
	require.Nil(t, optionalBool("maybe"))
}

func TestParsePage(t *testing.T) {
	p, err := parsePage(httptest.NewRequest("GET", "/?page_size=500", nil))
	require.NoError(t, err)
	require.Equal(t, pageRequest{Page: 1, Size: maxPageSize}, p)

	p, err = parsePage(httptest.NewRequest("GET", "/?page=3&page_size=10", nil))
	require.NoError(t, err)
	require.Equal(t, uint(20), p.Offset())

	_, err = parsePage(httptest.NewRequest("GET", "/?page=0", nil))
	require.ErrorIs(t, err, errInvalidPage)
}

func TestNewPage_EmptyFirstPage(t *testing.T) {
	r := httptest.NewRequest("GET", "/x/", nil)
	page, err := newPage[int](r, pageRequest{Page: 1, Size: 50}, 0, nil)
	require.NoError(t, err)
	require.Equal(t, []int{}, page.Results)
	require.Nil(t, page.Next)
	require.Nil(t, page.Previous)
}
