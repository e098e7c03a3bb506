// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the COUNTER Validator.
package api

import (
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"countervalidator/internal/api/handler/v1handler"
	"countervalidator/internal/config"
	"countervalidator/pkg/controller"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

//go:embed specs/v1.yaml
var v1Spec []byte

const timeoutBody = `{"code":"TIMEOUT","message":"request timed out"}`

// Options configure the listener and the routes mounted next to /api/v1.
type Options struct {
	SecHandlerOptions *v1handler.SecHandlerOptions

	Addr              string
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	// RequestTimeout bounds a whole request, file upload included.
	RequestTimeout time.Duration
	MaxHeaderBytes int

	MetricsPath string
	// MediaRoot is served under /media/ when files are kept on the local disk.
	MediaRoot string
	// APIKeyRequestsPerMinute throttles API key requests per user. Zero disables it.
	APIKeyRequestsPerMinute int
	CORSAllowedOrigins      []string

	// Registry receives the request metrics and is served at MetricsPath.
	// Nil means the prometheus default registry.
	Registry *prometheus.Registry
}

// NewOptions reads Options from the http, jwt, throttle and fileStore sections.
func NewOptions(cfg *config.Config) Options {
	opts := Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,

		CORSAllowedOrigins: cfg.HTTP.CORSAllowedOrigins,

		APIKeyRequestsPerMinute: cfg.Throttle.APIKeyRequestsPerMinute,
	}
	if cfg.FileStore.Backend == "local" {
		opts.MediaRoot = cfg.FileStore.LocalRoot
	}

	return opts
}

type Deps struct {
	v1handler.Deps
}

// NewServer returns the API server. Next to /api/v1 it serves prometheus
// metrics, the OpenAPI document with a swagger UI, pprof and, for the local
// file store, the stored files.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}

	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	withMetrics, err := controller.WithMetrics(mp.Meter("countervalidator/api"))
	if err != nil {
		return nil, err
	}
	r.Use(withMetrics)

	r.Handle(opts.MetricsPath, promhttp.InstrumentMetricHandler(registerer,
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"COUNTER Validator",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	var throttle *controller.Throttle
	if opts.APIKeyRequestsPerMinute > 0 {
		throttle = controller.NewThrottle(opts.APIKeyRequestsPerMinute)
	}
	r.Mount("/api/v1", v1handler.New(deps.Deps).Routes(secHandler, throttle))

	if opts.MediaRoot != "" {
		r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(opts.MediaRoot))))
	}

	// pprof
	r.Mount("/debug", middleware.Profiler())

	handler := controller.WithCORS(opts.CORSAllowedOrigins)(r)

	handler = controller.WithLogger(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, timeoutBody)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
