package dsl

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/turing/pkg/domain"
)

// ErrInvalidToken is returned when a state or symbol cannot be written as a
// single description token.
var ErrInvalidToken = errors.New("invalid token")

// Builder manages the transition table construction.
// Rules keep the order in which they were added, which decides which of two
// rules for the same state and symbol wins.
type Builder struct {
	start       domain.StateID
	emptySymbol domain.Symbol
	states      map[domain.StateID]*StateBuilder
	rules       []*RuleBuilder
}

// New creates a new machine builder.
func New() *Builder {
	return &Builder{
		states: make(map[domain.StateID]*StateBuilder),
	}
}

// Start sets the initial state. Unset, the parser default applies.
func (b *Builder) Start(state domain.StateID) *Builder {
	b.start = state
	return b
}

// EmptySymbol sets the symbol of cells beyond the tape ends.
func (b *Builder) EmptySymbol(symbol domain.Symbol) *Builder {
	b.emptySymbol = symbol
	return b
}

// State returns the builder for the rules leaving a state.
// If the state already exists, it returns the existing builder.
func (b *Builder) State(id domain.StateID) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	return sb
}

// Transitions returns the rules added so far, in order.
func (b *Builder) Transitions() []domain.Transition {
	out := make([]domain.Transition, 0, len(b.rules))
	for _, r := range b.rules {
		out = append(out, r.t)
	}
	return out
}

// Description renders the transition table as description text.
// Parameter lines come first, one transition per line after them.
func (b *Builder) Description() (string, error) {
	var sb strings.Builder
	if b.start != "" {
		if err := checkToken("start", b.start); err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "start %s\n", b.start)
	}
	if b.emptySymbol != "" {
		if err := checkToken("empty_symbol", b.emptySymbol); err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "empty_symbol %s\n", b.emptySymbol)
	}

	for i, r := range b.rules {
		t := r.t
		for _, f := range []struct{ name, value string }{
			{"from", t.From}, {"read", t.Read}, {"write", t.Write}, {"goto", t.Goto}, {"move", t.Move},
		} {
			if err := checkToken(f.name, f.value); err != nil {
				return "", fmt.Errorf("rule %d: %w", i+1, err)
			}
		}
		fmt.Fprintf(&sb, "from %s read %s write %s goto %s move %s\n", t.From, t.Read, t.Write, t.Goto, t.Move)
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// Program builds a program carrying the rendered description and tape.
func (b *Builder) Program(id, tape string) (domain.Program, error) {
	desc, err := b.Description()
	if err != nil {
		return domain.Program{}, fmt.Errorf("failed to build program %q: %w", id, err)
	}
	return domain.Program{ID: id, Description: desc, Tape: tape}, nil
}

func checkToken(field, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidToken, field)
	}
	if strings.ContainsFunc(value, unicode.IsSpace) {
		return fmt.Errorf("%w: %s %q contains whitespace", ErrInvalidToken, field, value)
	}
	return nil
}
