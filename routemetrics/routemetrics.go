// Package routemetrics exports route search statistics to Prometheus.
//
// Metrics implements astar.Observer; plug it in with astar.WithObserver.
package routemetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/aislenav/astar"
)

// Metrics holds the collectors registered by New.
type Metrics struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	steps    prometheus.Histogram
	duration prometheus.Histogram
}

// New registers the route search collectors on reg. A nil reg falls back to
// prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Metrics{
		// Labels: "found", "trivial", "blocked", "no_route"
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "aislenav_searches_total",
			Help: "Total single-pair route searches by outcome",
		}, []string{"result"}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "aislenav_search_expanded_nodes",
			Help:    "Cells expanded per A* search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		steps: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "aislenav_route_steps",
			Help:    "Steps along routes that were found",
			Buckets: []float64{0, 5, 10, 20, 40, 80, 160},
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "aislenav_search_duration_seconds",
			Help:    "Single-pair search duration",
			Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
	}
}

// ObserveSearch records one finished search.
func (m *Metrics) ObserveSearch(s astar.SearchStats) {
	m.searches.WithLabelValues(string(s.Outcome)).Inc()
	m.duration.Observe(s.Duration.Seconds())
	switch s.Outcome {
	case astar.OutcomeFound:
		m.expanded.Observe(float64(s.Expanded))
		m.steps.Observe(float64(s.Steps))
	case astar.OutcomeNoRoute:
		m.expanded.Observe(float64(s.Expanded))
	}
}

// SearchesCounter exposes the per-outcome search counter.
func (m *Metrics) SearchesCounter() *prometheus.CounterVec { return m.searches }
