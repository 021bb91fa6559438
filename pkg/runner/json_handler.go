package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/aretw0/turing/pkg/domain"
)

// Event types emitted by JSONHandler.
const (
	EventDiagnostic = "diagnostic"
	EventTrace      = "trace"
	EventResult     = "result"
)

// Event is one JSON line written by JSONHandler.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// JSONHandler implements Sink for structured JSON-Lines output.
type JSONHandler struct {
	Writer  io.Writer
	Encoder *json.Encoder

	mu sync.Mutex
}

// NewJSONHandler creates a handler writing to w (Stdout when nil).
func NewJSONHandler(w io.Writer) *JSONHandler {
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) emit(typ string, data any) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.Encoder.Encode(Event{Type: typ, Data: data})
}

func (h *JSONHandler) Diagnostic(ctx context.Context, d domain.Diagnostic) error {
	return h.emit(EventDiagnostic, d)
}

func (h *JSONHandler) Trace(ctx context.Context, rec *domain.TraceRecord) error {
	return h.emit(EventTrace, rec)
}

func (h *JSONHandler) Result(ctx context.Context, res *domain.Result) error {
	return h.emit(EventResult, res)
}
