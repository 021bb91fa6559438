/*
Package dsl provides a Go DSL for programmatically constructing Turing machine descriptions.

It lets developers define transition tables with a type-safe, fluent builder
instead of hand-writing description text. The builder emits the same text
format the parser reads, so a built program can be stored, shared as a link
or run like any other.

Example usage:

	package main

	import (
		"github.com/aretw0/turing/pkg/dsl"
	)

	func main() {
		b := dsl.New().Start("scan")

		b.State("scan").
			On("0").Write("1").Right().Goto("scan").
			On("1").Write("0").Right().Goto("scan")

		program, err := b.Program("bit-flip", "1 0 1 1")
		// ... pass program to turing.New().Execute(...)
	}
*/
package dsl
