package observability

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Run outcomes used as the "outcome" label.
const (
	OutcomeHalted  = "halted"
	OutcomeStopped = "stopped"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	Runs         *prometheus.CounterVec
	Steps        prometheus.Histogram
	Duration     *prometheus.HistogramVec
	InvalidLines prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "turing_runs_total",
				Help: "Total number of machine runs by outcome",
			},
			[]string{"outcome"},
		),
		Steps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "turing_run_steps",
				Help:    "Transitions applied per run",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "turing_run_duration_seconds",
				Help: "Wall-clock duration of machine runs",
			},
			[]string{"outcome"},
		),
		InvalidLines: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "turing_invalid_lines_total",
				Help: "Description lines skipped as invalid",
			},
		),
	}

	if reg != nil {
		reg.MustRegister(m.Runs, m.Steps, m.Duration, m.InvalidLines)
	}
	return m
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnHalt: func(ctx context.Context, res *domain.Result) {
			outcome := OutcomeHalted
			if !res.Halted {
				outcome = OutcomeStopped
			}
			m.Runs.WithLabelValues(outcome).Inc()
			m.Steps.Observe(float64(res.Steps))
			m.Duration.WithLabelValues(outcome).Observe(res.Elapsed.Seconds())
		},
		OnDiagnostic: func(ctx context.Context, d *domain.Diagnostic) {
			m.InvalidLines.Inc()
		},
	}
}
