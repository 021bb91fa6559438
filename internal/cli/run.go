package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/turing/internal/presentation/tui"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/ports"
	"github.com/aretw0/turing/pkg/runner"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	// File holds the description. "-" reads Stdin.
	File string
	// Description is used when File is empty.
	Description string
	Tape        string

	Trace   bool
	JSON    bool
	Elapsed bool
	// Pretty renders the result with glamour when Stdout is a terminal.
	Pretty bool
}

// LoadProgram reads the description from the file or the inline text.
func LoadProgram(opts RunOptions, stdin io.Reader) (domain.Program, error) {
	p := domain.Program{Description: opts.Description, Tape: opts.Tape}

	switch opts.File {
	case "":
		return p, nil
	case "-":
		desc, err := runner.ReadSource(stdin)
		if err != nil {
			return p, fmt.Errorf("read description from stdin: %w", err)
		}
		p.Description = desc
	default:
		f, err := os.Open(opts.File)
		if err != nil {
			return p, fmt.Errorf("open description: %w", err)
		}
		defer f.Close()
		desc, err := runner.ReadSource(f)
		if err != nil {
			return p, fmt.Errorf("read %s: %w", opts.File, err)
		}
		p.Description = desc
	}
	return p, nil
}

// NewSink picks the output format for the run command.
func NewSink(opts RunOptions, stdout, stderr io.Writer) runner.Sink {
	if opts.JSON {
		return runner.NewJSONHandler(stdout)
	}

	textOpts := []runner.TextHandlerOption{
		runner.WithErrorWriter(stderr),
		runner.WithElapsed(opts.Elapsed),
	}
	if opts.Pretty && tui.IsTerminal(stdout) {
		textOpts = append(textOpts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
	}
	return runner.NewTextHandler(stdout, textOpts...)
}

// Run executes one program and writes its events to the sink chosen by opts.
// A run stopped by the step limit or an interrupt still prints its partial
// result; the error is returned so callers can set the exit status.
func Run(ctx context.Context, engine ports.Executor, p domain.Program, opts RunOptions, stdout, stderr io.Writer, logger *slog.Logger) (*domain.Result, error) {
	r := runner.NewRunner(
		runner.WithEngine(engine),
		runner.WithSink(NewSink(opts, stdout, stderr)),
		runner.WithTrace(opts.Trace),
		runner.WithLogger(logger),
	)

	res, err := r.Run(ctx, p)
	if err != nil && IsStopped(err) && !opts.JSON {
		printSystemMessage(stderr, "%v", err)
	}
	return res, err
}
