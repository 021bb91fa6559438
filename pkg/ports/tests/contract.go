package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
)

// ProgramLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.ProgramLoader.
// expected maps every ID the loader must serve to its program.
func ProgramLoaderContractTest(t *testing.T, loader ports.ProgramLoader, expected map[string]domain.Program) {
	t.Helper()
	ctx := context.Background()

	t.Run("GetProgram_Success", func(t *testing.T) {
		for id, want := range expected {
			got, err := loader.GetProgram(ctx, id)
			if err != nil {
				t.Fatalf("unexpected error getting program %s: %v", id, err)
			}
			if got.Description != want.Description {
				t.Errorf("description mismatch for %s. got %q, want %q", id, got.Description, want.Description)
			}
			if got.Tape != want.Tape {
				t.Errorf("tape mismatch for %s. got %q, want %q", id, got.Tape, want.Tape)
			}
		}
	})

	t.Run("GetProgram_NotFound", func(t *testing.T) {
		_, err := loader.GetProgram(ctx, "non-existent-program")
		if !errors.Is(err, domain.ErrProgramNotFound) {
			t.Errorf("expected ErrProgramNotFound, got %v", err)
		}
	})

	t.Run("ListPrograms", func(t *testing.T) {
		ids, err := loader.ListPrograms(ctx)
		if err != nil {
			t.Fatalf("unexpected error listing programs: %v", err)
		}

		if len(ids) != len(expected) {
			t.Errorf("expected %d programs, got %d", len(expected), len(ids))
		}

		lookup := make(map[string]bool)
		for _, id := range ids {
			lookup[id] = true
		}

		for id := range expected {
			if !lookup[id] {
				t.Errorf("program %s missing from list", id)
			}
		}
	})
}
