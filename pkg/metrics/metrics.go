// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// UpstreamBuckets covers scraper runs, which can take most of the 30s budget.
var UpstreamBuckets = []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60}

var (
	// StageTotal counts pipeline stage outcomes.
	StageTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "relay_stage_total",
			Help: "Pipeline stage outcomes",
		},
		[]string{"stage", "outcome"},
	)

	// UpstreamLatency records the duration of provider calls in seconds.
	UpstreamLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "relay_upstream_latency_seconds",
			Help:    "Upstream provider latency",
			Buckets: UpstreamBuckets,
		},
		[]string{"provider"},
	)
)

func init() {
	prometheus.MustRegister(StageTotal, UpstreamLatency)
}

// ObserveStage records the outcome of one pipeline stage.
func ObserveStage(stage string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	StageTotal.WithLabelValues(stage, outcome).Inc()
}

// ObserveUpstream records the latency of a provider call started at start.
func ObserveUpstream(provider string, start time.Time) {
	UpstreamLatency.WithLabelValues(provider).Observe(time.Since(start).Seconds())
}
