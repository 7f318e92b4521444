// Package metrics holds the Prometheus collectors shared by recording,
// replay and the HTTP viewer. They register on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StrategyRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoviz_strategy_runs_total",
		Help: "Total number of algorithm recordings, labelled by strategy and outcome.",
	}, []string{"strategy", "outcome"})

	StepsRecorded = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "algoviz_steps_recorded",
		Help:    "Length of recorded step sequences, labelled by strategy.",
		Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000},
	}, []string{"strategy"})

	ReplayRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoviz_replay_renders_total",
		Help: "Total number of frames pushed to a drawer, labelled by strategy.",
	}, []string{"strategy"})

	FoldedSteps = promauto.NewCounter(prometheus.CounterOpts{
		Name: "algoviz_replay_folded_steps_total",
		Help: "Total number of steps applied while folding visual state.",
	})

	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "algoviz_http_requests_total",
		Help: "Total HTTP requests served by the viewer, labelled by route and status code.",
	}, []string{"route", "code"})

	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "algoviz_active_sessions",
		Help: "Number of open interactive sessions.",
	})
)

// Outcome labels for StrategyRuns.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
