package turing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Execute(t *testing.T) {
	eng := turing.New()

	res, err := eng.Execute(context.Background(), domain.Program{
		Description: "from 1 read a write b goto 2 move r",
		Tape:        "a",
	})
	require.NoError(t, err)

	assert.Equal(t, "2", res.State)
	assert.Equal(t, "b [_] ", res.Tape)
	assert.True(t, res.Halted)
}

func TestEngine_Execute_TapeWhitespace(t *testing.T) {
	eng := turing.New()

	res, err := eng.Execute(context.Background(), domain.Program{
		Description: "from 1 read 1 write 1 goto 1 move r",
		Tape:        "  1 1\t1\n",
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.Steps)
	assert.Equal(t, "1 1 1 [_] ", res.Tape)
}

func TestEngine_Compile_ReportsDiagnostics(t *testing.T) {
	var seen []string
	eng := turing.New(turing.WithLifecycleHooks(domain.LifecycleHooks{
		OnDiagnostic: func(ctx context.Context, d *domain.Diagnostic) {
			seen = append(seen, d.String())
		},
	}))

	m := eng.Compile(context.Background(), "from 1 read a write b goto 2 move r\nnonsense here x")
	assert.Len(t, m.Transitions, 1)
	assert.Equal(t, []string{"error: invalid line 'nonsense,here,x'"}, seen)
}

func TestEngine_Execute_CarriesDiagnostics(t *testing.T) {
	res, err := turing.New().Execute(context.Background(), domain.Program{
		Description: "bad\nfrom 1 read a write b goto 2 move r",
		Tape:        "a",
	})
	require.NoError(t, err)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, 1, res.Diagnostics[0].Line)
}

func TestEngine_DefaultParams(t *testing.T) {
	eng := turing.New(turing.WithDefaultParams(domain.MachineParams{Start: "q0", EmptySymbol: "B"}))

	res, err := eng.Execute(context.Background(), domain.Program{
		Description: "from q0 read B write 1 goto q1 move r",
	})
	require.NoError(t, err)
	assert.Equal(t, "q1", res.State)
	assert.Equal(t, "1 [B] ", res.Tape)
}

func TestEngine_StepLimit(t *testing.T) {
	eng := turing.New(turing.WithStepLimit(10), turing.WithGrowChunk(16))

	res, err := eng.Execute(context.Background(), domain.Program{
		Description: "from 1 read _ write 1 goto 1 move r",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStepLimitExceeded))
	require.NotNil(t, res)
	assert.Equal(t, 10, res.Steps)
	assert.False(t, res.Halted)
}

func TestEngine_TraceAndObserve(t *testing.T) {
	eng := turing.New()
	var streamed []domain.TraceRecord

	res, err := eng.Execute(context.Background(), domain.Program{
		Description: "from 1 read a write b goto 2 move r",
		Tape:        "a",
	}, turing.Traced(true), turing.Observe(func(ctx context.Context, rec *domain.TraceRecord) {
		streamed = append(streamed, *rec)
	}))
	require.NoError(t, err)

	assert.Len(t, res.Trace, 2)
	assert.Equal(t, res.Trace, streamed)
}

func TestEngine_Validate(t *testing.T) {
	m, issues := turing.New().Validate(context.Background(), `from 1 read a write b goto 2 move r
from 1 read a write c goto 2 move r
junk`)
	assert.Len(t, m.Diagnostics, 1)
	assert.Len(t, issues, 1)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, turing.Version)
	assert.NotContains(t, turing.Version, "\n")
}
