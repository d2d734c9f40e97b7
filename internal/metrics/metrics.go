// Package metrics provides the centralized Prometheus registry for the simulator.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fairway_edge"

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	TrialsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "trials_total",
		Help:      "Total number of simulated trials",
	})
	TiedTrialsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tied_trials_total",
		Help:      "Total number of trials with no strict winner",
	})
	ScheduledRecomputesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "scheduled_recomputes_total",
		Help:      "Total number of scheduled recomputes by status",
	}, []string{"status"})
)

// Gauge metrics
var (
	CohortSize = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cohort_size",
		Help:      "Number of players in the last simulated cohort",
	})
	ActiveMetrics = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_metrics",
		Help:      "Number of weighted metrics used by the last run",
	})
	LastRunTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time the last simulation completed",
	})
)

// Histogram metrics
var (
	SimulationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "simulation_duration_seconds",
		Help:      "Duration of simulation runs in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(TrialsTotal)
		registry.MustRegister(TiedTrialsTotal)
		registry.MustRegister(ScheduledRecomputesTotal)

		registry.MustRegister(CohortSize)
		registry.MustRegister(ActiveMetrics)
		registry.MustRegister(LastRunTimestamp)

		registry.MustRegister(SimulationDuration)

		// Simulation metrics
		registry.MustRegister(SimulationRunsTotal)
		registry.MustRegister(PlayerWinPercentage)
		registry.MustRegister(PlayerEdge)
		registry.MustRegister(ValueBets)

		// Cohort cache metrics
		registry.MustRegister(CohortCacheHitsTotal)
		registry.MustRegister(CohortCacheMissesTotal)
		registry.MustRegister(CohortCacheHitRatio)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordScheduledRecompute records the outcome of a scheduled recompute.
// status should be one of: "success", "failure", "skipped"
func RecordScheduledRecompute(status string) {
	ScheduledRecomputesTotal.WithLabelValues(status).Inc()
}
