package metrics

import "github.com/prometheus/client_golang/prometheus"

// Cohort cache metrics
var (
	CohortCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cohort_cache_hits_total",
		Help:      "Total cohort file loads served from cache",
	})
	CohortCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cohort_cache_misses_total",
		Help:      "Total cohort file loads that parsed the file",
	})
	CohortCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cohort_cache_hit_ratio",
		Help:      "Cohort cache hit ratio since start",
	})
)

// RecordCohortCacheHit records a cache hit and the current hit ratio
func RecordCohortCacheHit(ratio float64) {
	CohortCacheHitsTotal.Inc()
	CohortCacheHitRatio.Set(ratio)
}

// RecordCohortCacheMiss records a cache miss and the current hit ratio
func RecordCohortCacheMiss(ratio float64) {
	CohortCacheMissesTotal.Inc()
	CohortCacheHitRatio.Set(ratio)
}
