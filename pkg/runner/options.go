package runner

import (
	"log/slog"

	"github.com/aretw0/turing/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithEngine configures the engine used to compile and run programs.
func WithEngine(engine ports.Executor) Option {
	return func(r *Runner) {
		r.engine = engine
	}
}

// WithSink configures where run events are written.
func WithSink(sink Sink) Option {
	return func(r *Runner) {
		r.Sink = sink
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.Logger = logger
	}
}

// WithTrace streams a trace record to the sink before every step.
func WithTrace(enabled bool) Option {
	return func(r *Runner) {
		r.Trace = enabled
	}
}

// WithSignals stops the run on SIGINT/SIGTERM.
func WithSignals(enabled bool) Option {
	return func(r *Runner) {
		r.Signals = enabled
	}
}
