package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunProgramStoreContract runs a suite of tests to verify that a ProgramStore implementation
// adheres to the defined interface contract.
func RunProgramStoreContract(t *testing.T, store ProgramStore) {
	ctx := context.Background()
	programID := "contract-test-program-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		program := &domain.Program{
			Description: "from 1 read a write b goto 2 move r\nstart 1",
			Tape:        "a b  c",
		}

		err := store.Save(ctx, programID, program)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, programID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, programID, loaded.ID)
		assert.Equal(t, program.Description, loaded.Description)
		assert.Equal(t, program.Tape, loaded.Tape, "tape text is stored verbatim")
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, programID, &domain.Program{Description: "start 1", Tape: "x"}))
		require.NoError(t, store.Save(ctx, programID, &domain.Program{Description: "start 2", Tape: "y"}))

		loaded, err := store.Load(ctx, programID)
		require.NoError(t, err)
		assert.Equal(t, "start 2", loaded.Description)
		assert.Equal(t, "y", loaded.Tape)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+programID)
		assert.ErrorIs(t, err, domain.ErrProgramNotFound)
	})

	t.Run("Empty ID", func(t *testing.T) {
		assert.ErrorIs(t, store.Save(ctx, "", &domain.Program{}), domain.ErrEmptyProgramID)
		_, err := store.Load(ctx, "")
		assert.ErrorIs(t, err, domain.ErrEmptyProgramID)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, programID, &domain.Program{Description: "start 1"})
		require.NoError(t, err)

		err = store.Delete(ctx, programID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, programID)
		assert.ErrorIs(t, err, domain.ErrProgramNotFound, "Load after Delete should return ErrProgramNotFound")

		assert.NoError(t, store.Delete(ctx, programID), "Delete of a missing program is not an error")
	})

	t.Run("List", func(t *testing.T) {
		id1 := programID + "-1"
		id2 := programID + "-2"
		_ = store.Save(ctx, id1, &domain.Program{Description: "start 1"})
		_ = store.Save(ctx, id2, &domain.Program{Description: "start 2"})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id1)
		assert.Contains(t, ids, id2)
	})
}
