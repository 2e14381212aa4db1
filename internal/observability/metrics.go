package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Search outcomes used as the "outcome" label of SearchesTotal.
const (
	OutcomeFound      = "found"
	OutcomeNotFound   = "not_found"
	OutcomeInfeasible = "infeasible"
	OutcomeCancelled  = "cancelled"
)

// SearchMetrics contains the Prometheus metrics of the pathway search.
type SearchMetrics struct {
	// SearchesTotal counts finished searches, labeled by outcome.
	SearchesTotal *prometheus.CounterVec

	// PathsProcessed counts partial pathways popped from the search queue.
	PathsProcessed prometheus.Counter

	// PathsQueued counts partial pathways pushed onto the search queue.
	PathsQueued prometheus.Counter

	// Paintings counts distance paintings computed for search goals.
	Paintings prometheus.Counter

	// SearchDuration observes search duration in seconds.
	SearchDuration prometheus.Histogram

	// PathwayLength observes the length of pathways found.
	PathwayLength prometheus.Histogram
}

// NewSearchMetrics creates the search metrics and registers them on reg.
// A nil reg uses the default Prometheus registerer.
func NewSearchMetrics(reg prometheus.Registerer) *SearchMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &SearchMetrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "metapath",
			Subsystem: "search",
			Name:      "searches_total",
			Help:      "Total number of pathway searches by outcome.",
		}, []string{"outcome"}),
		PathsProcessed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "metapath",
			Subsystem: "search",
			Name:      "paths_processed_total",
			Help:      "Total number of partial pathways popped from the queue.",
		}),
		PathsQueued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "metapath",
			Subsystem: "search",
			Name:      "paths_queued_total",
			Help:      "Total number of partial pathways pushed onto the queue.",
		}),
		Paintings: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "metapath",
			Subsystem: "search",
			Name:      "paintings_total",
			Help:      "Total number of goal distance paintings computed.",
		}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metapath",
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Duration of pathway searches in seconds.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		PathwayLength: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "metapath",
			Subsystem: "search",
			Name:      "pathway_length",
			Help:      "Number of reactions in pathways found.",
			Buckets:   prometheus.LinearBuckets(1, 2, 15),
		}),
	}
}

// RecordSearch records one finished search.
func (m *SearchMetrics) RecordSearch(outcome string, seconds float64, length int) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.SearchDuration.Observe(seconds)
	if outcome == OutcomeFound {
		m.PathwayLength.Observe(float64(length))
	}
}
