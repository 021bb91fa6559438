package runner_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/aretw0/turing"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	diags  []domain.Diagnostic
	traces []domain.TraceRecord
	result *domain.Result
	err    error
}

func (s *recordingSink) Diagnostic(_ context.Context, d domain.Diagnostic) error {
	s.diags = append(s.diags, d)
	return s.err
}

func (s *recordingSink) Trace(_ context.Context, rec *domain.TraceRecord) error {
	s.traces = append(s.traces, *rec)
	return s.err
}

func (s *recordingSink) Result(_ context.Context, res *domain.Result) error {
	s.result = res
	return s.err
}

func TestRunner_TextOutput(t *testing.T) {
	out := &bytes.Buffer{}
	r := runner.NewRunner(
		runner.WithSink(runner.NewTextHandler(out)),
		runner.WithTrace(true),
	)

	res, err := r.Run(context.Background(), domain.Program{
		Description: "from 1 read a write b goto 2 move r",
		Tape:        "a",
	})
	require.NoError(t, err)
	assert.Equal(t, "2", res.State)

	expected := "State: 1\nTape: [a] \n\n" +
		"State: 2\nTape: b [_] \n\n" +
		"Terminated in state 2\nTape: b [_] \n"
	assert.Equal(t, expected, out.String())
}

func TestRunner_DiagnosticsFirst(t *testing.T) {
	sink := &recordingSink{}
	r := runner.NewRunner(runner.WithSink(sink))

	res, err := r.Run(context.Background(), domain.Program{
		Description: "garbage here\nfrom 1 read a write b goto 2 move r",
		Tape:        "a",
	})
	require.NoError(t, err)

	require.Len(t, sink.diags, 1)
	assert.Equal(t, 1, sink.diags[0].Line)
	assert.Empty(t, sink.traces, "no trace without WithTrace")
	assert.Same(t, res, sink.result)
}

func TestRunner_StepLimitReportsPartialResult(t *testing.T) {
	sink := &recordingSink{}
	r := runner.NewRunner(
		runner.WithEngine(turing.New(turing.WithStepLimit(5))),
		runner.WithSink(sink),
	)

	res, err := r.Run(context.Background(), domain.Program{
		Description: "from 1 read _ write _ goto 1 move r",
	})
	require.ErrorIs(t, err, domain.ErrStepLimitExceeded)
	require.NotNil(t, res)
	assert.False(t, res.Halted)
	assert.Same(t, res, sink.result)
}

func TestRunner_SinkError(t *testing.T) {
	boom := errors.New("boom")
	r := runner.NewRunner(runner.WithSink(&recordingSink{err: boom}), runner.WithTrace(true))

	_, err := r.Run(context.Background(), domain.Program{
		Description: "from 1 read a write b goto 2 move r",
		Tape:        "a",
	})
	assert.ErrorIs(t, err, boom)
}

func TestRunner_RejectsInvalidInput(t *testing.T) {
	r := runner.NewRunner()
	_, err := r.Run(context.Background(), domain.Program{Description: "\xbd"})
	assert.ErrorIs(t, err, runner.ErrInvalidUTF8)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := runner.NewRunner(runner.WithSignals(true))
	res, err := r.Run(ctx, domain.Program{Description: "from 1 read _ write _ goto 1 move r"})
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Halted)
}
