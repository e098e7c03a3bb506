// Package c5tools provides a validationmodule.Client implementation backed by
// the c5tools HTTP validation modules.
package c5tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"countervalidator/pkg/logger"
	"countervalidator/pkg/metrics"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/validationmodule"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("countervalidator/pkg/validationmodule/c5tools")

// statusError is returned for non 2xx answers.
type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("validation module responded with %d: %s", e.status, e.body)
}

// BreakerOptions configures the per module circuit breaker.
type BreakerOptions struct {
	// ConsecutiveFailures opens the breaker once reached. Zero disables tripping.
	ConsecutiveFailures uint32
	// OpenTimeout is how long the breaker stays open before probing again.
	OpenTimeout time.Duration
	// HalfOpenRequests is the number of trial requests allowed while half open.
	HalfOpenRequests uint32
}

// Options configures Client.
type Options struct {
	// RequestTimeout bounds a single module call. Zero means no extra bound.
	RequestTimeout time.Duration
	Breaker        BreakerOptions
}

// Client calls c5tools modules. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	opts       Options

	mu       sync.Mutex
	breakers map[string]*gobreaker.CircuitBreaker[[]byte]
}

var _ validationmodule.Client = (*Client)(nil)

// New constructs a Client that uses httpClient for all module calls.
func New(httpClient *http.Client, opts Options) *Client {
	if opts.Breaker.HalfOpenRequests == 0 {
		opts.Breaker.HalfOpenRequests = 1
	}
	if opts.Breaker.OpenTimeout == 0 {
		opts.Breaker.OpenTimeout = time.Minute
	}

	return &Client{
		httpClient: httpClient,
		opts:       opts,
		breakers:   make(map[string]*gobreaker.CircuitBreaker[[]byte]),
	}
}

func (c *Client) breaker(moduleURL string) *gobreaker.CircuitBreaker[[]byte] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if cb, ok := c.breakers[moduleURL]; ok {
		return cb
	}
	failures := c.opts.Breaker.ConsecutiveFailures
	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        moduleURL,
		MaxRequests: c.opts.Breaker.HalfOpenRequests,
		Timeout:     c.opts.Breaker.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return failures > 0 && counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			// client side problems say nothing about module health
			var se *statusError
			if errors.As(err, &se) {
				return se.status < http.StatusInternalServerError
			}

			return errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "validation module breaker changed state",
				zap.String("module", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	c.breakers[moduleURL] = cb

	return cb
}

func (c *Client) call(ctx context.Context, moduleURL, kind string, build func(ctx context.Context) (*http.Request, error)) ([]byte, error) {
	if c.opts.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.RequestTimeout)
		defer cancel()
	}

	ctx, span := tracer.Start(ctx, "c5tools."+kind,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("module.url", moduleURL)))
	defer span.End()

	started := time.Now()
	body, err := c.breaker(moduleURL).Execute(func() ([]byte, error) {
		req, err := build(ctx)
		if err != nil {
			return nil, err
		}

		return c.do(req)
	})
	metrics.ModuleDuration.WithLabelValues(moduleURL, kind).Observe(time.Since(started).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "module call failed")
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "validation module %s is unavailable", moduleURL)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, serrors.Wrap(serrors.ErrTimeout, err, "validation module %s timed out", moduleURL)
	}

	return body, err
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{status: resp.StatusCode, body: strings.TrimSpace(string(b))}
	}

	return b, nil
}

// ValidateFile posts the raw report body to <moduleURL>file.php.
func (c *Client) ValidateFile(ctx context.Context, moduleURL, extension string, body io.Reader) ([]byte, error) {
	target := moduleURL + "file.php?" + url.Values{"extension": {extension}}.Encode()

	return c.call(ctx, moduleURL, "file", func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, body)
		if err != nil {
			return nil, fmt.Errorf("could not create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/octet-stream")

		return req, nil
	})
}

// ValidateCounterAPI posts {"url": sushiURL} to <moduleURL>sushi.php.
func (c *Client) ValidateCounterAPI(ctx context.Context, moduleURL, sushiURL string) ([]byte, error) {
	payload, err := json.Marshal(map[string]string{"url": sushiURL})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	return c.call(ctx, moduleURL, "counter_api", func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, moduleURL+"sushi.php", bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("could not create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		return req, nil
	})
}
