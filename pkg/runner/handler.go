package runner

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// Sink receives the events of a run.
// This allows switching between Text (CLI/TUI) and JSON (Structured) output.
type Sink interface {
	// Diagnostic reports a description line that was skipped.
	Diagnostic(ctx context.Context, d domain.Diagnostic) error

	// Trace reports the configuration before a step. Only called when tracing.
	Trace(ctx context.Context, rec *domain.TraceRecord) error

	// Result reports the final configuration, also for runs stopped early.
	Result(ctx context.Context, res *domain.Result) error
}

// ContentRenderer is a function that transforms text before it is written.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)

// Discard is a Sink that drops every event.
var Discard Sink = discard{}

type discard struct{}

func (discard) Diagnostic(context.Context, domain.Diagnostic) error { return nil }
func (discard) Trace(context.Context, *domain.TraceRecord) error { return nil }
func (discard) Result(context.Context, *domain.Result) error { return nil }
