// Package metrics holds the Prometheus collectors shared by the API server
// and the background workers.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300} //nolint: gochecknoglobals

//nolint: gochecknoglobals
var (
	// ValidationsCreated counts accepted validation requests by data source.
	ValidationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "validations_created_total",
		Help: "Number of validations created.",
	}, []string{"source"})

	// ValidationsFinished counts validations that reached a final status.
	ValidationsFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "validations_finished_total",
		Help: "Number of validations that finished, by status.",
	}, []string{"status"})

	// ModuleDuration observes how long validation modules take to answer.
	ModuleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "validation_module_duration_seconds",
		Help:    "Duration of validation module requests.",
		Buckets: DefaultBuckets,
	}, []string{"module", "kind"})
)
