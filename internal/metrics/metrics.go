// Package metrics exposes Prometheus collectors for the site generator.
// A build step has no scrape endpoint, so collectors are flushed to a
// node-exporter textfile at the end of a run when a path is configured.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	routesDiscovered           *prometheus.GaugeVec
	discoveryFallbacksTotal    *prometheus.CounterVec
	artifactEntries            *prometheus.GaugeVec
	artifactBytes              *prometheus.GaugeVec
	duplicateURLsTotal         *prometheus.CounterVec
	generationsTotal           *prometheus.CounterVec
	generationDurationSeconds  *prometheus.HistogramVec
	sinkFailuresTotal          *prometheus.CounterVec
	lastSuccessTimestampSecond *prometheus.GaugeVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		routesDiscovered = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sitegen_routes_discovered",
				Help: "Number of route segments resolved by the last discovery, labeled by source.",
			},
			[]string{"source"},
		)

		discoveryFallbacksTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitegen_discovery_fallbacks_total",
				Help: "Total number of discoveries that degraded to the hardcoded fallback list.",
			},
			[]string{"source"},
		)

		artifactEntries = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sitegen_artifact_entries",
				Help: "Number of entries written to the last generated artifact.",
			},
			[]string{"artifact"},
		)

		artifactBytes = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sitegen_artifact_bytes",
				Help: "Size in bytes of the last generated artifact.",
			},
			[]string{"artifact"},
		)

		duplicateURLsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitegen_duplicate_urls_total",
				Help: "Total number of colliding URLs dropped while assembling an artifact.",
			},
			[]string{"artifact"},
		)

		generationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitegen_generations_total",
				Help: "Total number of artifact generations, labeled by artifact and status.",
			},
			[]string{"artifact", "status"},
		)

		generationDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sitegen_generation_duration_seconds",
				Help:    "Histogram of artifact generation latencies.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
			},
			[]string{"artifact"},
		)

		sinkFailuresTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sitegen_sink_failures_total",
				Help: "Total number of failed artifact mirrors or notifications.",
			},
			[]string{"artifact", "sink"},
		)

		lastSuccessTimestampSecond = promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sitegen_last_success_timestamp_seconds",
				Help: "Unix time of the last successful generation of an artifact.",
			},
			[]string{"artifact"},
		)
	})
}

// DiscoveryObserver forwards discovery outcomes to the package collectors.
type DiscoveryObserver struct{}

// ObserveDiscovery records a discovery result.
func (DiscoveryObserver) ObserveDiscovery(source string, count int, usedFallback bool) {
	ObserveDiscovery(source, count, usedFallback)
}

// ObserveDiscovery records how many segments a source produced and whether
// the fallback list was used.
func ObserveDiscovery(source string, count int, usedFallback bool) {
	Init()
	routesDiscovered.WithLabelValues(source).Set(float64(count))
	if usedFallback {
		discoveryFallbacksTotal.WithLabelValues(source).Inc()
	}
}

// ObserveDuplicates increments the dropped-duplicate counter.
func ObserveDuplicates(artifact string, n int) {
	Init()
	if n > 0 {
		duplicateURLsTotal.WithLabelValues(artifact).Add(float64(n))
	}
}

// ObserveArtifact records a finished generation.
func ObserveArtifact(artifact string, entries, size int, duration time.Duration, finished time.Time) {
	Init()
	artifactEntries.WithLabelValues(artifact).Set(float64(entries))
	artifactBytes.WithLabelValues(artifact).Set(float64(size))
	generationDurationSeconds.WithLabelValues(artifact).Observe(duration.Seconds())
	generationsTotal.WithLabelValues(artifact, "success").Inc()
	lastSuccessTimestampSecond.WithLabelValues(artifact).Set(float64(finished.Unix()))
}

// ObserveFailure records a failed generation.
func ObserveFailure(artifact string) {
	Init()
	generationsTotal.WithLabelValues(artifact, "failure").Inc()
}

// ObserveSinkFailure records a failed mirror upload or notification.
func ObserveSinkFailure(artifact, sink string) {
	Init()
	sinkFailuresTotal.WithLabelValues(artifact, sink).Inc()
}

// WriteTextfile flushes every registered collector to path in the Prometheus
// text format, creating the parent directory when needed.
func WriteTextfile(path string) error {
	Init()
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
