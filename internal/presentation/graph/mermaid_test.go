package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/internal/presentation/graph"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func compile(desc string) *domain.Machine {
	return compiler.NewParser().ParseText(desc)
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		description string
		contains    []string
		excludes    []string
	}{
		{
			name:        "Start And Halting Shapes",
			description: "from 1 read a write b goto 2 move r",
			contains: []string{
				"graph LR\n",
				"s0((\"1\"))",
				"s1(((\"2\")))",
				"s0 -- \"a/b,right\" --> s1",
			},
		},
		{
			name: "Intermediate State",
			description: "from 1 read a write a goto 2 move l\n" +
				"from 2 read a write a goto 3 move x",
			contains: []string{
				"s1[\"2\"]",
				"s1 -- \"a/a,stay\" --> s2",
			},
		},
		{
			name: "Shadowed Transition",
			description: "from 1 read a write b goto 1 move r\n" +
				"from 1 read a write c goto 2 move r",
			contains: []string{
				"s0 -- \"a/b,right\" --> s0",
				"s0 -. \"a/c,right\" .-> s1",
			},
		},
		{
			name:        "Quotes Escaped",
			description: "from \"q\" read a write a goto 2 move r\nstart \"q\"",
			contains:    []string{"s0((\"#quot;q#quot;\"))"},
			excludes:    []string{"\"\"q"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(compile(tt.description), nil)
			for _, c := range tt.contains {
				assert.Contains(t, got, c)
			}
			for _, e := range tt.excludes {
				assert.NotContains(t, got, e)
			}
			assert.NotContains(t, got, "classDef")
		})
	}
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	m := compile("from 1 read a write b goto 2 move r")
	res := &domain.Result{
		State: "2",
		Trace: []domain.TraceRecord{{State: "1"}, {State: "2"}, {State: "1"}},
	}

	got := graph.GenerateMermaid(m, graph.OverlayFromResult(res))

	assert.Contains(t, got, "classDef visited")
	assert.Equal(t, 1, strings.Count(got, "class s0 visited;"))
	assert.Contains(t, got, "class s1 visited;")
	assert.Contains(t, got, "class s1 current;")
}

func TestGenerateMermaid_NilMachine(t *testing.T) {
	assert.Equal(t, "graph LR\n", graph.GenerateMermaid(nil, nil))
	assert.Nil(t, graph.OverlayFromResult(nil))
}
