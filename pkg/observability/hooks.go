package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/turing/pkg/domain"
)

// LoggingHooks logs run boundaries at info level, steps at debug level and
// skipped lines as warnings.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStart: func(ctx context.Context, m *domain.Machine) {
			logger.InfoContext(ctx, "run_start",
				"start", m.Params.Start,
				"transitions", len(m.Transitions),
			)
		},
		OnStep: func(ctx context.Context, rec *domain.TraceRecord) {
			logger.DebugContext(ctx, "run_step",
				"step", rec.Step,
				"state", rec.State,
				"head", rec.Head,
			)
		},
		OnHalt: func(ctx context.Context, res *domain.Result) {
			logger.InfoContext(ctx, "run_end",
				"state", res.State,
				"steps", res.Steps,
				"halted", res.Halted,
				"elapsed", res.Elapsed,
			)
		},
		OnDiagnostic: func(ctx context.Context, d *domain.Diagnostic) {
			logger.WarnContext(ctx, "invalid_line", "line", d.Line, "diagnostic", d.String())
		},
	}
}

// Chain returns hooks that call every non-nil hook of each set, in order.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var out domain.LifecycleHooks

	var starts []func(context.Context, *domain.Machine)
	var steps []func(context.Context, *domain.TraceRecord)
	var halts []func(context.Context, *domain.Result)
	var diags []func(context.Context, *domain.Diagnostic)

	for _, s := range sets {
		if s.OnStart != nil {
			starts = append(starts, s.OnStart)
		}
		if s.OnStep != nil {
			steps = append(steps, s.OnStep)
		}
		if s.OnHalt != nil {
			halts = append(halts, s.OnHalt)
		}
		if s.OnDiagnostic != nil {
			diags = append(diags, s.OnDiagnostic)
		}
	}

	if len(starts) > 0 {
		out.OnStart = func(ctx context.Context, m *domain.Machine) {
			for _, fn := range starts {
				fn(ctx, m)
			}
		}
	}
	if len(steps) > 0 {
		out.OnStep = func(ctx context.Context, rec *domain.TraceRecord) {
			for _, fn := range steps {
				fn(ctx, rec)
			}
		}
	}
	if len(halts) > 0 {
		out.OnHalt = func(ctx context.Context, res *domain.Result) {
			for _, fn := range halts {
				fn(ctx, res)
			}
		}
	}
	if len(diags) > 0 {
		out.OnDiagnostic = func(ctx context.Context, d *domain.Diagnostic) {
			for _, fn := range diags {
				fn(ctx, d)
			}
		}
	}
	return out
}
