package loam

import (
	"context"
	"testing"

	"github.com/aretw0/loam"
	"github.com/aretw0/turing/internal/testutils"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Contract(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)

	testutils.WriteFiles(t, tmpDir, map[string]string{
		"flip.md": `---
id: flip
tape: "1 0 1"
---
from 1 read 0 write 1 goto 1 move r
from 1 read 1 write 0 goto 1 move r`,
		"blank.md": `---
title: Does nothing
start: q0
empty_symbol: B
---
`,
	})

	loader := New(loam.NewTypedRepository[MachineMetadata](repo))

	tests.ProgramLoaderContractTest(t, loader, map[string]domain.Program{
		"flip": {
			Description: "from 1 read 0 write 1 goto 1 move r\nfrom 1 read 1 write 0 goto 1 move r",
			Tape:        "1 0 1",
		},
		"blank": {
			Description: "start q0\nempty_symbol B",
		},
	})
}

func TestLoader_FencedBody(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)

	testutils.WriteFiles(t, tmpDir, map[string]string{
		"doc.md": "---\nid: doc\n---\n# Unary successor\n\nAppends a 1.\n\n```tm\nfrom 1 read 1 write 1 goto 1 move r\nfrom 1 read _ write 1 goto 2 move stay\n```\n\nDone.\n",
	})

	loader := New(loam.NewTypedRepository[MachineMetadata](repo))
	p, err := loader.GetProgram(context.Background(), "doc")
	require.NoError(t, err)

	assert.Equal(t, "from 1 read 1 write 1 goto 1 move r\nfrom 1 read _ write 1 goto 2 move stay", p.Description)
	assert.Equal(t, "doc", p.ID)
}

func TestLoader_ListPrograms_NormalizesIDs(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)

	testutils.WriteFiles(t, tmpDir, map[string]string{
		"explicit.md": "---\nid: explicit.md\n---\nstart 1",
		"implicit.md": "---\ntape: a\n---\nstart 1",
	})

	loader := New(loam.NewTypedRepository[MachineMetadata](repo))
	ids, err := loader.ListPrograms(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"explicit", "implicit"}, ids)
}

func TestLoader_ListPrograms_DetectsCollisions(t *testing.T) {
	tmpDir, repo := testutils.SetupTestRepo(t)

	testutils.WriteFiles(t, tmpDir, map[string]string{
		"foo.md": "---\nid: foo\n---\nstart 1",
		"bar.md": "---\nid: foo\n---\nstart 2",
	})

	loader := New(loam.NewTypedRepository[MachineMetadata](repo))
	_, err := loader.ListPrograms(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collision detected")
}

func TestBuildDescription(t *testing.T) {
	got := buildDescription(MachineMetadata{Start: "q0"}, "from q0 read a write b goto q1 move r\n")
	assert.Equal(t, "start q0\nfrom q0 read a write b goto q1 move r", got)

	assert.Equal(t, "start 1", buildDescription(MachineMetadata{}, "  start 1  \n"))
}
