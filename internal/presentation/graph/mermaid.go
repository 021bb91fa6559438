package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// GraphOverlay contains run data to visualize on the graph.
type GraphOverlay struct {
	VisitedStates []domain.StateID
	CurrentState  domain.StateID
}

// OverlayFromResult builds an overlay from a traced run.
func OverlayFromResult(res *domain.Result) *GraphOverlay {
	if res == nil {
		return nil
	}
	o := &GraphOverlay{CurrentState: res.State}
	for _, rec := range res.Trace {
		o.VisitedStates = append(o.VisitedStates, rec.State)
	}
	return o
}

// GenerateMermaid produces a Mermaid flowchart of the transition table.
// It applies semantic styling:
// - Start: ((Circle))
// - Halting (no outgoing transition): (((Double circle)))
// - Default: [Rectangle]
// Edges are labelled read/write,move. Transitions shadowed by an earlier
// one with the same state and symbol are drawn dotted.
func GenerateMermaid(m *domain.Machine, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	if m == nil {
		return sb.String()
	}

	states := m.States()
	ids := make(map[domain.StateID]string, len(states))
	for i, s := range states {
		ids[s] = fmt.Sprintf("s%d", i)
	}

	outgoing := make(map[domain.StateID]bool)
	for _, t := range m.Transitions {
		outgoing[t.From] = true
	}

	for _, s := range states {
		opener, closer := "[", "]"
		switch {
		case s == m.Params.Start:
			opener, closer = "((", "))"
		case !outgoing[s]:
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", ids[s], opener, escapeLabel(s), closer))
	}

	type key struct{ state, read string }
	seen := make(map[key]bool)
	for _, t := range m.Transitions {
		k := key{t.From, t.Read}
		arrow := "-- \"%s\" -->"
		if seen[k] {
			arrow = "-. \"%s\" .->"
		}
		seen[k] = true

		label := fmt.Sprintf("%s/%s,%s", t.Read, t.Write, t.Direction())
		sb.WriteString(fmt.Sprintf("    %s "+arrow+" %s\n", ids[t.From], escapeLabel(label), ids[t.Goto]))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		styled := make(map[string]bool)
		for _, s := range overlay.VisitedStates {
			id, ok := ids[s]
			if ok && !styled[id] {
				styled[id] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
			}
		}
		if id, ok := ids[overlay.CurrentState]; ok {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", id))
		}
	}

	return sb.String()
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
