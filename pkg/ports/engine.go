package ports

import (
	"context"

	"github.com/aretw0/turing/internal/runtime"
	"github.com/aretw0/turing/pkg/domain"
)

// Executor is the engine surface used by driving adapters (HTTP, MCP, CLI).
type Executor interface {
	// Compile parses a description into a machine, collecting diagnostics.
	Compile(ctx context.Context, description string) *domain.Machine

	// Run executes a compiled machine on the given tape symbols.
	Run(ctx context.Context, m *domain.Machine, tape []domain.Symbol, opts ...runtime.RunOption) (*domain.Result, error)

	// Execute compiles and runs a program.
	Execute(ctx context.Context, program domain.Program, opts ...runtime.RunOption) (*domain.Result, error)

	// Validate compiles a description and reports static findings.
	Validate(ctx context.Context, description string) (*domain.Machine, []runtime.Issue)
}
