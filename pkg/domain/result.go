package domain

import "time"

// ExecutionState is the mutable part of a run.
type ExecutionState struct {
	State StateID `json:"state"`
	Head  int     `json:"head"`
	Steps int     `json:"steps"`
}

// TraceRecord is emitted once per step when tracing is enabled,
// before the transition for the step is looked up.
type TraceRecord struct {
	Step  int     `json:"step"`
	State StateID `json:"state"`
	Head  int     `json:"head"`
	Tape  string  `json:"tape"`
}

// Result is the outcome of a run.
type Result struct {
	State StateID `json:"state"`
	Head  int     `json:"head"`
	Steps int     `json:"steps"`

	// Tape is the windowed rendering centered on Head.
	Tape string `json:"tape"`
	// Cells is a copy of the touched tape window.
	Cells []Symbol `json:"cells"`
	// Origin is the logical index of Cells[0].
	Origin int `json:"origin"`

	// Halted is false when the run was stopped by a step limit or cancellation.
	Halted  bool          `json:"halted"`
	Elapsed time.Duration `json:"elapsed"`
	Trace   []TraceRecord `json:"trace,omitempty"`

	// Diagnostics are the description lines skipped while compiling.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}
