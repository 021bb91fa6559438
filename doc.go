/*
Package turing is an interpreter for single-tape Turing machines described as plain text.

A description is a list of lines made of space-separated key/value pairs. A line
holding from, read, write, goto and move is a transition; a line holding start or
empty_symbol sets machine parameters; anything else is reported as a diagnostic
and skipped.

	from 1 read a write b goto 2 move r
	from 2 read _ write c goto 3 move l
	start 1

The engine runs the first transition matching the current state and symbol until
none matches, and reports the final state with a window of the tape around the
head, the highlighted cell in brackets:

	eng := turing.New()
	res, err := eng.Execute(ctx, domain.Program{
		Description: "from 1 read a write b goto 2 move r",
		Tape:        "a",
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(res.State, res.Tape) // 2 b [_]

# Termination

Runs are not bounded by default. Hosts bound them with WithStepLimit or by
cancelling the context; both stop the run between steps and return the partial
result together with the error.
*/
package turing
