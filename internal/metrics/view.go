package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// View-model Prometheus metrics.
var (
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huddle",
			Name:      "search_queries_total",
			Help:      "Total number of search queries",
		},
		[]string{"empty"}, // "true" / "false"
	)

	SearchMatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huddle",
			Name:      "search_matches_total",
			Help:      "Entities matched by search, per kind",
		},
		[]string{"kind"},
	)

	MapPinsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "huddle",
			Name:      "map_pins_total",
			Help:      "Map pins projected, by visibility",
		},
		[]string{"visibility"}, // "visible" / "offscreen"
	)

	MapFallbackBoundsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "huddle",
			Name:      "map_fallback_bounds_total",
			Help:      "Map views rendered with the fallback region",
		},
	)
)

var registerViewOnce sync.Once

// RegisterViewMetrics registers the view-model metrics with the default registry.
// Safe to call more than once.
func RegisterViewMetrics() {
	registerViewOnce.Do(func() {
		prometheus.MustRegister(
			SearchQueriesTotal,
			SearchMatchesTotal,
			MapPinsTotal,
			MapFallbackBoundsTotal,
		)
	})
}
