package domain

import (
	"fmt"
	"strings"
)

// MachineParams holds the machine-level parameters of a description.
type MachineParams struct {
	Start       StateID `json:"start" yaml:"start"`
	EmptySymbol Symbol  `json:"empty_symbol" yaml:"empty_symbol"`

	// Extra keeps any other key found on a parameter line.
	Extra map[string]string `json:"extra,omitempty" yaml:"extra,omitempty"`
}

// DefaultParams returns the parameters used when a description sets none.
func DefaultParams() MachineParams {
	return MachineParams{
		Start:       DefaultStart,
		EmptySymbol: DefaultEmptySymbol,
	}
}

// Diagnostic reports a description line that is neither a transition nor a parameter line.
type Diagnostic struct {
	// Line is the 1-based position among the non-blank lines of the description.
	Line    int      `json:"line"`
	Tokens  []string `json:"tokens"`
	Message string   `json:"message"`
}

// String renders the diagnostic the way it is surfaced to users.
func (d Diagnostic) String() string {
	return fmt.Sprintf("error: invalid line '%s'", strings.Join(d.Tokens, ","))
}

// Machine is a compiled description.
type Machine struct {
	// Transitions is ordered; the first match wins.
	Transitions []Transition  `json:"transitions"`
	Params      MachineParams `json:"params"`
	Diagnostics []Diagnostic  `json:"diagnostics,omitempty"`
}

// States returns the distinct states named by the table, in order of first appearance.
func (m *Machine) States() []StateID {
	seen := make(map[StateID]bool)
	var states []StateID
	add := func(s StateID) {
		if !seen[s] {
			seen[s] = true
			states = append(states, s)
		}
	}
	add(m.Params.Start)
	for _, t := range m.Transitions {
		add(t.From)
		add(t.Goto)
	}
	return states
}
