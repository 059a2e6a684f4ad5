package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	EngineQueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "multisearch",
			Name:      "engine_query_duration_seconds",
			Help:      "Per-collection engine query duration in seconds",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"collection", "status"}, // "ok" / "error"
	)

	HydrationDroppedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "multisearch",
			Name:      "hydration_dropped_total",
			Help:      "Engine ids with no record in the store",
		},
		[]string{"location"},
	)

	BestResultTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "multisearch",
			Name:      "best_result_total",
			Help:      "Best result selections by type",
		},
		[]string{"type"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(EngineQueryDuration)
	prometheus.MustRegister(HydrationDroppedTotal)
	prometheus.MustRegister(BestResultTotal)
	searchMetricsRegistered = true
}
