package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/tape"
)

// Engine is the core machine runner.
// An Engine is immutable after construction and safe for concurrent Run calls;
// every run owns its tape and execution state.
type Engine struct {
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	stepLimit int
	growChunk int
	trace     bool
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger. Per-step records are logged at debug level.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStepLimit stops a run with domain.ErrStepLimitExceeded once n transitions
// have fired and another one would. Zero means unbounded.
func WithStepLimit(n int) EngineOption {
	return func(e *Engine) {
		if n >= 0 {
			e.stepLimit = n
		}
	}
}

// WithGrowChunk sets the growth chunk of the tapes created by the engine.
func WithGrowChunk(n int) EngineOption {
	return func(e *Engine) {
		e.growChunk = n
	}
}

// WithTrace enables per-step trace records by default.
func WithTrace(enabled bool) EngineOption {
	return func(e *Engine) {
		e.trace = enabled
	}
}

// NewEngine creates a new engine.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:    logging.NewNop(),
		growChunk: tape.DefaultGrowChunk,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunOption overrides engine defaults for a single run.
type RunOption func(*runConfig)

type runConfig struct {
	trace    bool
	observer func(context.Context, *domain.TraceRecord)
}

// Traced enables or disables trace collection for one run.
func Traced(enabled bool) RunOption {
	return func(c *runConfig) {
		c.trace = enabled
	}
}

// Observe streams every trace record to fn as it is produced, without
// collecting it in the result.
func Observe(fn func(context.Context, *domain.TraceRecord)) RunOption {
	return func(c *runConfig) {
		c.observer = fn
	}
}

// Run executes the machine on the initial tape until no transition matches.
//
// The loop is unbounded unless a step limit is configured or ctx is cancelled;
// both are checked between steps and return the partial result together with
// the error.
func (e *Engine) Run(ctx context.Context, m *domain.Machine, initial []domain.Symbol, opts ...RunOption) (*domain.Result, error) {
	if m == nil {
		return nil, fmt.Errorf("cannot run nil machine")
	}

	cfg := runConfig{trace: e.trace}
	for _, opt := range opts {
		opt(&cfg)
	}

	params := m.Params
	if params.Start == "" {
		params.Start = domain.DefaultStart
	}
	if params.EmptySymbol == "" {
		params.EmptySymbol = domain.DefaultEmptySymbol
	}

	started := time.Now()
	tp := tape.New(initial, params.EmptySymbol, tape.WithGrowChunk(e.growChunk))
	index := buildIndex(m.Transitions)
	exec := domain.ExecutionState{State: params.Start}

	if e.hooks.OnStart != nil {
		e.hooks.OnStart(ctx, m)
	}

	debug := e.logger.Enabled(ctx, slog.LevelDebug)
	observeSteps := cfg.trace || cfg.observer != nil || e.hooks.OnStep != nil
	done := ctx.Done()

	var trace []domain.TraceRecord

	for {
		if done != nil {
			select {
			case <-done:
				res := e.finish(ctx, m, tp, exec, started, trace, false)
				return res, fmt.Errorf("run cancelled after %d steps: %w", exec.Steps, ctx.Err())
			default:
			}
		}

		sym := tp.Get(exec.Head)

		if debug {
			e.logger.Debug("step", "state", exec.State, "head", exec.Head, "symbol", sym, "steps", exec.Steps)
		}

		if observeSteps {
			rec := domain.TraceRecord{
				Step:  exec.Steps,
				State: exec.State,
				Head:  exec.Head,
				Tape:  tp.Render(exec.Head),
			}
			if cfg.trace {
				trace = append(trace, rec)
			}
			if cfg.observer != nil {
				cfg.observer(ctx, &rec)
			}
			if e.hooks.OnStep != nil {
				e.hooks.OnStep(ctx, &rec)
			}
		}

		i, ok := index.lookup(exec.State, sym)
		if !ok {
			return e.finish(ctx, m, tp, exec, started, trace, true), nil
		}

		if e.stepLimit > 0 && exec.Steps >= e.stepLimit {
			res := e.finish(ctx, m, tp, exec, started, trace, false)
			return res, fmt.Errorf("run stopped after %d steps: %w", exec.Steps, domain.ErrStepLimitExceeded)
		}

		t := m.Transitions[i]
		tp.Set(exec.Head, t.Write)
		exec.State = t.Goto
		exec.Head += t.Direction().Delta()
		exec.Steps++
	}
}

func (e *Engine) finish(ctx context.Context, m *domain.Machine, tp *tape.Tape, exec domain.ExecutionState, started time.Time, trace []domain.TraceRecord, halted bool) *domain.Result {
	res := &domain.Result{
		State:   exec.State,
		Head:    exec.Head,
		Steps:   exec.Steps,
		Tape:    tp.Render(exec.Head),
		Cells:   tp.Cells(),
		Origin:  tp.Origin(),
		Halted:  halted,
		Elapsed: time.Since(started),
		Trace:   trace,

		Diagnostics: m.Diagnostics,
	}

	if halted {
		e.logger.Debug("machine halted", "state", res.State, "steps", res.Steps, "elapsed", res.Elapsed)
	} else {
		e.logger.Warn("machine stopped before halting", "state", res.State, "steps", res.Steps)
	}

	if e.hooks.OnHalt != nil {
		e.hooks.OnHalt(ctx, res)
	}
	return res
}
