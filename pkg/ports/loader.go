package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ProgramLoader defines a read-only source of bundled or curated programs,
// such as a directory of machine files or the built-in samples.
type ProgramLoader interface {
	// GetProgram retrieves a program by ID.
	// Returns domain.ErrProgramNotFound if the ID is unknown.
	GetProgram(ctx context.Context, id string) (*domain.Program, error)

	// ListPrograms returns the IDs of every available program.
	ListPrograms(ctx context.Context) ([]string, error)
}
