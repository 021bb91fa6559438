package domain

import "strings"

// Symbol is an atomic token stored in one tape cell.
type Symbol = string

// StateID identifies the control configuration of a machine.
type StateID = string

// Default machine parameters.
const (
	DefaultStart       StateID = "1"
	DefaultEmptySymbol Symbol  = "_"
)

// SplitTape splits raw tape text into symbols on any whitespace.
// Empty tokens are never produced.
func SplitTape(raw string) []Symbol {
	return strings.Fields(raw)
}

// JoinTape is the inverse of SplitTape.
func JoinTape(symbols []Symbol) string {
	return strings.Join(symbols, " ")
}
