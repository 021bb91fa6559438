package runtime

import (
	"fmt"

	"github.com/aretw0/turing/pkg/domain"
)

// Issue is a non-fatal finding about a compiled machine.
type Issue struct {
	// Transition is the index of the offending transition, or -1.
	Transition int    `json:"transition"`
	Message    string `json:"message"`
}

// Validate inspects a machine for rules that can never fire or that do
// something other than what their spelling suggests. Execution does not
// depend on it.
func Validate(m *domain.Machine) []Issue {
	if m == nil {
		return []Issue{{Transition: -1, Message: "cannot validate nil machine"}}
	}

	var issues []Issue
	first := make(map[indexKey]int, len(m.Transitions))
	for i, t := range m.Transitions {
		k := indexKey{state: t.From, read: t.Read}
		if j, seen := first[k]; seen {
			issues = append(issues, Issue{
				Transition: i,
				Message:    fmt.Sprintf("unreachable: (%s, %s) is already handled by transition %d", t.From, t.Read, j),
			})
		} else {
			first[k] = i
		}

		if t.Direction() == domain.Stay && t.Move != "stay" && t.Move != "s" && t.Move != "n" {
			issues = append(issues, Issue{
				Transition: i,
				Message:    fmt.Sprintf("move %q is not left/l or right/r; the head stays", t.Move),
			})
		}
	}

	if len(m.Transitions) > 0 {
		starts := false
		for _, t := range m.Transitions {
			if t.From == m.Params.Start {
				starts = true
				break
			}
		}
		if !starts {
			issues = append(issues, Issue{
				Transition: -1,
				Message:    fmt.Sprintf("no transition leaves start state %q; the machine halts immediately", m.Params.Start),
			})
		}
	}

	return issues
}
