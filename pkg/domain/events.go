package domain

import "context"

// LifecycleHooks defines callbacks for engine observability.
// Nil hooks are skipped.
type LifecycleHooks struct {
	OnStart      func(context.Context, *Machine)
	OnStep       func(context.Context, *TraceRecord)
	OnHalt       func(context.Context, *Result)
	OnDiagnostic func(context.Context, *Diagnostic)
}
