package v1handler

import (
	"net/http"
	"net/url"
	"strconv"

	"countervalidator/pkg/serrors"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

var errInvalidPage = serrors.With(serrors.ErrNotFound, "Invalid page.")

// pageRequest is the page requested through the page and page_size query parameters.
type pageRequest struct {
	Page int
	Size int
}

func (p pageRequest) Offset() uint { return uint((p.Page - 1) * p.Size) } //nolint: gosec
func (p pageRequest) Limit() uint  { return uint(p.Size) }                //nolint: gosec

func parsePage(r *http.Request) (pageRequest, error) {
	q := r.URL.Query()
	p := pageRequest{Page: 1, Size: defaultPageSize}
	if raw := q.Get("page"); raw != "" && raw != "last" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, errInvalidPage
		}
		p.Page = n
	}
	if raw := q.Get("page_size"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			p.Size = min(n, maxPageSize)
		}
	}

	return p, nil
}

// pageJSON is the envelope of every paginated listing.
type pageJSON[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// newPage wraps one page of results. Pages past the end are 404, except the
// first page of an empty listing.
func newPage[T any](r *http.Request, p pageRequest, count int64, results []T) (*pageJSON[T], error) {
	if p.Page > 1 && int64(p.Offset()) >= count {
		return nil, errInvalidPage
	}
	if results == nil {
		results = []T{}
	}
	out := &pageJSON[T]{Count: count, Results: results}
	if int64(p.Offset())+int64(len(results)) < count {
		out.Next = pageURL(r, p.Page+1)
	}
	if p.Page > 1 {
		out.Previous = pageURL(r, p.Page-1)
	}

	return out, nil
}

func pageURL(r *http.Request, page int) *string {
	u := url.URL{Scheme: "http", Host: r.Host, Path: r.URL.Path}
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		u.Scheme = "https"
	}
	q := r.URL.Query()
	if page == 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = q.Encode()
	s := u.String()

	return &s
}
