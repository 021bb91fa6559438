package turing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/logging"
	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
)

// Engine is the high-level entry point for the turing library.
// It wraps the parser and the internal runtime behind a small API.
// An Engine is safe for concurrent use once built.
type Engine struct {
	parser   *compiler.Parser
	runtime  *runtime.Engine
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	defaults domain.MachineParams

	stepLimit int
	growChunk int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// RunOption tunes a single run. See Traced and Observe.
type RunOption = runtime.RunOption

// Issue is a static finding reported by Validate.
type Issue = runtime.Issue

// Traced enables or disables collecting trace records in the result of one run.
func Traced(enabled bool) RunOption {
	return runtime.Traced(enabled)
}

// Observe streams trace records of one run to fn as they are produced.
func Observe(fn func(context.Context, *domain.TraceRecord)) RunOption {
	return runtime.Observe(fn)
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithStepLimit bounds every run to n transitions. Zero means unbounded.
func WithStepLimit(n int) Option {
	return func(e *Engine) {
		e.stepLimit = n
	}
}

// WithGrowChunk sets how many cells a tape grows by at once.
func WithGrowChunk(n int) Option {
	return func(e *Engine) {
		e.growChunk = n
	}
}

// WithDefaultParams sets the start state and empty symbol used when a
// description does not set them.
func WithDefaultParams(params domain.MachineParams) Option {
	return func(e *Engine) {
		e.defaults = params
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}

	eng.parser = compiler.NewParser(
		compiler.WithParserLogger(eng.logger),
		compiler.WithDefaultParams(eng.defaults),
	)

	runtimeOpts := []runtime.EngineOption{
		runtime.WithLogger(eng.logger),
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithStepLimit(eng.stepLimit),
	}
	if eng.growChunk > 0 {
		runtimeOpts = append(runtimeOpts, runtime.WithGrowChunk(eng.growChunk))
	}
	eng.runtime = runtime.NewEngine(runtimeOpts...)

	return eng
}

// Compile parses a description. Invalid lines never fail compilation; they
// are returned as diagnostics on the machine and reported to OnDiagnostic.
func (e *Engine) Compile(ctx context.Context, description string) *domain.Machine {
	m := e.parser.ParseText(description)
	if e.hooks.OnDiagnostic != nil {
		for i := range m.Diagnostics {
			e.hooks.OnDiagnostic(ctx, &m.Diagnostics[i])
		}
	}
	return m
}

// Run executes a compiled machine on the given tape symbols.
func (e *Engine) Run(ctx context.Context, m *domain.Machine, tape []domain.Symbol, opts ...RunOption) (*domain.Result, error) {
	return e.runtime.Run(ctx, m, tape, opts...)
}

// Execute compiles and runs a program. The tape text is split on whitespace.
// When the run is stopped early the partial result is returned with the error.
func (e *Engine) Execute(ctx context.Context, p domain.Program, opts ...RunOption) (*domain.Result, error) {
	m := e.Compile(ctx, p.Description)
	res, err := e.Run(ctx, m, domain.SplitTape(p.Tape), opts...)
	if err != nil {
		return res, fmt.Errorf("execute program: %w", err)
	}
	return res, nil
}

// Validate compiles a description and reports its diagnostics together with
// static findings about the transition table.
func (e *Engine) Validate(ctx context.Context, description string) (*domain.Machine, []Issue) {
	m := e.Compile(ctx, description)
	return m, runtime.Validate(m)
}
