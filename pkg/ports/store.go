package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ProgramStore defines the interface for persisting named programs.
// Programs are stored as opaque description and tape text.
type ProgramStore interface {
	// Save persists the program under the given ID, replacing any previous one.
	Save(ctx context.Context, id string, program *domain.Program) error

	// Load retrieves the program for a given ID.
	// Returns domain.ErrProgramNotFound if the program does not exist.
	Load(ctx context.Context, id string) (*domain.Program, error)

	// Delete removes the program for a given ID. Deleting a missing ID is not an error.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of all stored programs.
	List(ctx context.Context) ([]string, error)
}
