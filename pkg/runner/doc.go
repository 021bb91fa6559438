/*
Package runner drives a single machine run and streams its events to a Sink.

The runner sits between the engine and the outside world. It sanitizes the
raw program text, compiles it, forwards skipped lines, trace records and the
final result to a pluggable Sink, and stops the run on SIGINT/SIGTERM when
asked to.

# Key Components

  - Runner: compiles and runs one program, reporting through a Sink.
  - Sink: receives diagnostics, trace records and the result.
  - TextHandler: human-readable output for terminals.
  - JSONHandler: one JSON event per line for tooling.

# Usage

	r := runner.NewRunner(
		runner.WithEngine(turing.New()),
		runner.WithSink(runner.NewTextHandler(os.Stdout)),
		runner.WithTrace(true),
	)

	if _, err := r.Run(ctx, domain.Program{Description: desc, Tape: "1 0 1"}); err != nil {
		log.Fatal(err)
	}
*/
package runner
