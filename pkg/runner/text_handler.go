package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// TextHandler writes run events as plain text.
//
// Trace records are written as
//
//	State: <state>
//	Tape: <rendering>
//
// followed by a blank line, and the result as
//
//	Terminated in state <state>
//	Tape: <rendering>
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer

	// Errors receives diagnostics. Defaults to Writer.
	Errors io.Writer

	// ShowElapsed appends the wall-clock time of the run to the result.
	ShowElapsed bool

	mu sync.Mutex
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the renderer applied to the result block.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithErrorWriter sends diagnostics to w.
func WithErrorWriter(w io.Writer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Errors = w
	}
}

// WithElapsed toggles the elapsed-time line.
func WithElapsed(show bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.ShowElapsed = show
	}
}

// NewTextHandler creates a handler writing to w (Stdout when nil).
func NewTextHandler(w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{Writer: w}
	for _, opt := range opts {
		opt(h)
	}
	if h.Errors == nil {
		h.Errors = h.Writer
	}
	return h
}

func (h *TextHandler) Diagnostic(ctx context.Context, d domain.Diagnostic) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.Errors, d.String())
	return err
}

func (h *TextHandler) Trace(ctx context.Context, rec *domain.TraceRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintf(h.Writer, "State: %s\nTape: %s\n\n", rec.State, rec.Tape)
	return err
}

func (h *TextHandler) Result(ctx context.Context, res *domain.Result) error {
	var b strings.Builder
	if res.Halted {
		fmt.Fprintf(&b, "Terminated in state %s\n", res.State)
	} else {
		fmt.Fprintf(&b, "Stopped in state %s after %d steps\n", res.State, res.Steps)
	}
	fmt.Fprintf(&b, "Tape: %s\n", res.Tape)
	if h.ShowElapsed {
		fmt.Fprintf(&b, "Elapsed: %s\n", res.Elapsed)
	}

	output := b.String()
	if h.Renderer != nil {
		if rendered, err := h.Renderer(output); err == nil {
			output = strings.TrimSpace(rendered) + "\n"
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.Writer, output)
	return err
}
