// Package metrics exposes Prometheus instrumentation for the analysis
// pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors the service layer records into.
type Metrics struct {
	VideosAnalyzed   prometheus.Counter
	Analyses         *prometheus.CounterVec
	QuotaUsed        prometheus.Counter
	AnalysisDuration prometheus.Histogram
}

// New registers the collectors on the given registerer. Passing
// prometheus.DefaultRegisterer wires them to the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		VideosAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "videos_analyzed_total",
			Help: "Total number of videos scored.",
		}),
		Analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "analyses_total",
			Help: "Total number of analysis runs by outcome.",
		}, []string{"status"}),
		QuotaUsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "quota_used_total",
			Help: "Total YouTube Data API quota units spent.",
		}),
		AnalysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "analysis_duration_seconds",
			Help:    "End-to-end duration of analysis runs.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}
