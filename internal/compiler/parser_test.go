package compiler_test

import (
	"testing"

	"github.com/aretw0/turing/internal/compiler"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Transition(t *testing.T) {
	m := compiler.NewParser().Parse([]string{"from 1 read a write b goto 2 move r"})

	require.Len(t, m.Transitions, 1)
	assert.Equal(t, domain.Transition{From: "1", Read: "a", Write: "b", Goto: "2", Move: "r"}, m.Transitions[0])
	assert.Equal(t, domain.Right, m.Transitions[0].Direction())
	assert.Empty(t, m.Diagnostics)
	assert.Equal(t, domain.DefaultParams(), m.Params)
}

func TestParser_KeysAreCaseInsensitive(t *testing.T) {
	p := compiler.NewParser()
	upper := p.Parse([]string{"FROM 1 READ a WRITE b GOTO 2 MOVE right"})
	lower := p.Parse([]string{"from 1 read a write b goto 2 move right"})

	assert.Equal(t, lower, upper)
}

func TestParser_ValuesKeepCase(t *testing.T) {
	m := compiler.NewParser().Parse([]string{"from Q0 read A write B goto Q1 move Left"})

	require.Len(t, m.Transitions, 1)
	assert.Equal(t, "Q0", m.Transitions[0].From)
	assert.Equal(t, "Left", m.Transitions[0].Move)
	assert.Equal(t, domain.Stay, m.Transitions[0].Direction())
}

func TestParser_KeyOrderDoesNotMatter(t *testing.T) {
	m := compiler.NewParser().Parse([]string{"move l goto 3 write x read y from 2"})

	require.Len(t, m.Transitions, 1)
	assert.Equal(t, domain.Transition{From: "2", Read: "y", Write: "x", Goto: "3", Move: "l"}, m.Transitions[0])
}

func TestParser_ParamsMerge(t *testing.T) {
	m := compiler.NewParser().Parse([]string{
		"start q0",
		"from q0 read 1 write 0 goto q1 move r",
		"empty_symbol B",
		"start q1 author ada",
	})

	assert.Equal(t, "q1", m.Params.Start)
	assert.Equal(t, "B", m.Params.EmptySymbol)
	assert.Equal(t, map[string]string{"author": "ada"}, m.Params.Extra)
	assert.Len(t, m.Transitions, 1)
	assert.Empty(t, m.Diagnostics)
}

func TestParser_InvalidLines(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "missing value", line: "from 1 read a write b goto 2 move"},
		{name: "missing key", line: "from 1 read a write b goto 2"},
		{name: "free text", line: "hello world"},
		{name: "double space shifts pairs", line: "from 1  read a write b goto 2 move r"},
		{name: "unknown keys", line: "color red"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := compiler.NewParser().Parse([]string{
				"from 1 read _ write _ goto 1 move stay",
				tt.line,
			})

			assert.Len(t, m.Transitions, 1)
			require.Len(t, m.Diagnostics, 1)
			assert.Equal(t, 2, m.Diagnostics[0].Line)
		})
	}
}

func TestParser_OddTrailingKeyIsIgnored(t *testing.T) {
	m := compiler.NewParser().Parse([]string{"from 1 read a write b goto 2 move r extra"})

	assert.Len(t, m.Transitions, 1)
	assert.Empty(t, m.Diagnostics)
}

func TestParser_DanglingKeyClearsEarlierValue(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "dangling transition key", line: "from 1 read a write b goto 2 move r from"},
		{name: "dangling parameter key", line: "start 2 start"},
		{name: "explicit empty value", line: "from 1 read a write b goto 2 move r from "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := compiler.NewParser().Parse([]string{tt.line})

			assert.Empty(t, m.Transitions)
			assert.Equal(t, domain.DefaultStart, m.Params.Start)
			require.Len(t, m.Diagnostics, 1)
			assert.Equal(t, 1, m.Diagnostics[0].Line)
		})
	}
}

func TestParser_ParamLineKeepsTransitionKeys(t *testing.T) {
	m := compiler.NewParser().Parse([]string{"start 3 move r goto 4"})

	assert.Equal(t, "3", m.Params.Start)
	assert.Equal(t, map[string]string{"move": "r", "goto": "4"}, m.Params.Extra)
	assert.Empty(t, m.Transitions)
	assert.Empty(t, m.Diagnostics)
}

func TestParser_DuplicateKeyLastWins(t *testing.T) {
	m := compiler.NewParser().Parse([]string{"from 1 read a write b goto 2 move r goto 3"})

	require.Len(t, m.Transitions, 1)
	assert.Equal(t, "3", m.Transitions[0].Goto)
}

func TestParser_TransitionOrderIsKept(t *testing.T) {
	m := compiler.NewParser().Parse([]string{
		"from 1 read a write x goto 2 move r",
		"from 1 read a write y goto 3 move l",
	})

	require.Len(t, m.Transitions, 2)
	assert.Equal(t, "x", m.Transitions[0].Write)
	assert.Equal(t, "y", m.Transitions[1].Write)
}

func TestParser_ParseText(t *testing.T) {
	text := "start 1\r\n\r\n   \nfrom 1 read a write b goto 2 move r\r\nbogus\n"
	m := compiler.NewParser().ParseText(text)

	assert.Len(t, m.Transitions, 1)
	require.Len(t, m.Diagnostics, 1)
	assert.Equal(t, 3, m.Diagnostics[0].Line, "blank lines are not counted")
	assert.Equal(t, []string{"bogus"}, m.Diagnostics[0].Tokens)
	assert.Equal(t, "error: invalid line 'bogus'", m.Diagnostics[0].String())
}

func TestDiagnostic_String(t *testing.T) {
	m := compiler.NewParser().Parse([]string{"from 1 read"})

	require.Len(t, m.Diagnostics, 1)
	assert.Equal(t, "error: invalid line 'from,1,read'", m.Diagnostics[0].String())
}

func TestParser_DefaultParams(t *testing.T) {
	p := compiler.NewParser(compiler.WithDefaultParams(domain.MachineParams{EmptySymbol: "B"}))

	m := p.Parse([]string{"from 1 read B write 1 goto 2 move r"})
	assert.Equal(t, "1", m.Params.Start)
	assert.Equal(t, "B", m.Params.EmptySymbol)

	m = p.Parse([]string{"empty_symbol 0"})
	assert.Equal(t, "0", m.Params.EmptySymbol)
}
