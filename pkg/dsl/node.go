package dsl

import "github.com/aretw0/turing/pkg/domain"

// StateBuilder adds the rules leaving one state.
type StateBuilder struct {
	id      domain.StateID
	builder *Builder
}

// On starts a rule for the state reading symbol.
// The rule writes the symbol back and stays in place until told otherwise.
func (s *StateBuilder) On(symbol domain.Symbol) *RuleBuilder {
	r := &RuleBuilder{
		state: s,
		t: domain.Transition{
			From:  s.id,
			Read:  symbol,
			Write: symbol,
			Goto:  s.id,
			Move:  "stay",
		},
	}
	s.builder.rules = append(s.builder.rules, r)
	return r
}

// RuleBuilder provides a fluent API for configuring one transition.
type RuleBuilder struct {
	state *StateBuilder
	t     domain.Transition
}

// Write sets the symbol written under the head.
func (r *RuleBuilder) Write(symbol domain.Symbol) *RuleBuilder {
	r.t.Write = symbol
	return r
}

// Move sets the head movement.
func (r *RuleBuilder) Move(d domain.Direction) *RuleBuilder {
	r.t.Move = d.String()
	return r
}

// Left moves the head one cell to the left.
func (r *RuleBuilder) Left() *RuleBuilder { return r.Move(domain.Left) }

// Right moves the head one cell to the right.
func (r *RuleBuilder) Right() *RuleBuilder { return r.Move(domain.Right) }

// Goto sets the next state and returns to the state builder for chaining.
func (r *RuleBuilder) Goto(state domain.StateID) *StateBuilder {
	r.t.Goto = state
	return r.state
}

// Build returns the underlying domain.Transition.
func (r *RuleBuilder) Build() domain.Transition {
	return r.t
}
