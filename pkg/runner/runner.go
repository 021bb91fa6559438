package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// ErrNoEngine is returned by Run when the runner has no engine.
var ErrNoEngine = errors.New("runner has no engine")

// Runner compiles and runs one program at a time, reporting through a Sink.
type Runner struct {
	// Sink receives run events. Defaults to Discard.
	Sink Sink

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Trace streams a record per step to Sink.
	Trace bool

	// Signals cancels the run on SIGINT/SIGTERM.
	Signals bool

	engine ports.Executor
}

// NewRunner creates a Runner. Without WithEngine a default turing.Engine is used.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.engine == nil {
		r.engine = turing.New()
	}
	if r.Sink == nil {
		r.Sink = Discard
	}
	if r.Logger == nil {
		r.Logger = logging.NewNop()
	}
	return r
}

// Run sanitizes, compiles and runs p. Diagnostics are reported before the
// run starts and the result is reported even when the run is stopped early;
// the partial result is then returned together with the error.
func (r *Runner) Run(ctx context.Context, p domain.Program) (*domain.Result, error) {
	if r.engine == nil {
		return nil, ErrNoEngine
	}

	p, err := SanitizeProgram(p)
	if err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	if r.Signals {
		signals := NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	m := r.engine.Compile(ctx, p.Description)
	for _, d := range m.Diagnostics {
		if err := r.Sink.Diagnostic(ctx, d); err != nil {
			return nil, fmt.Errorf("output error: %w", err)
		}
	}
	r.Logger.Debug("machine compiled",
		"transitions", len(m.Transitions),
		"diagnostics", len(m.Diagnostics),
		"start", m.Params.Start,
	)

	var sinkErr error
	var opts []turing.RunOption
	if r.Trace {
		opts = append(opts, turing.Observe(func(ctx context.Context, rec *domain.TraceRecord) {
			if sinkErr == nil {
				sinkErr = r.Sink.Trace(ctx, rec)
			}
		}))
	}

	res, runErr := r.engine.Run(ctx, m, domain.SplitTape(p.Tape), opts...)
	if res != nil {
		if err := r.Sink.Result(ctx, res); err != nil && sinkErr == nil {
			sinkErr = err
		}
	}

	if runErr != nil {
		r.Logger.Debug("run stopped", "err", runErr)
		return res, runErr
	}
	if sinkErr != nil {
		return res, fmt.Errorf("output error: %w", sinkErr)
	}
	return res, nil
}
