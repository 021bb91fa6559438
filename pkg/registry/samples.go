package registry

import "github.com/aretw0/turing/pkg/domain"

var builtin = []Sample{
	{
		Title: "Flip every bit",
		Program: domain.Program{
			ID:   "bit-flip",
			Tape: "1 0 1 1",
			Description: `from 1 read 0 write 1 goto 1 move r
from 1 read 1 write 0 goto 1 move r`,
		},
		Expect: Expectation{State: "1", Steps: 4, Tape: "0 1 0 0 [_] "},
	},
	{
		Title: "Binary increment",
		Program: domain.Program{
			ID:   "binary-increment",
			Tape: "1 0 1 1",
			Description: `from 1 read 0 write 0 goto 1 move right
from 1 read 1 write 1 goto 1 move right
from 1 read _ write _ goto 2 move left
from 2 read 1 write 0 goto 2 move left
from 2 read 0 write 1 goto 3 move left
from 2 read _ write 1 goto 3 move left`,
		},
		Expect: Expectation{State: "3", Steps: 8, Tape: "[1] 1 0 0 _ "},
	},
	{
		Title: "Unary addition",
		Program: domain.Program{
			ID:   "unary-add",
			Tape: "1 1 + 1 1 1",
			Description: `from 1 read 1 write 1 goto 1 move r
from 1 read + write 1 goto 2 move r
from 2 read 1 write 1 goto 2 move r
from 2 read _ write _ goto 3 move l
from 3 read 1 write _ goto 4 move l`,
		},
		Expect: Expectation{State: "4", Steps: 8, Tape: "1 1 1 1 [1] _ "},
	},
	{
		Title: "Two-state busy beaver",
		Program: domain.Program{
			ID: "busy-beaver-2",
			Description: `start A
empty_symbol 0
from A read 0 write 1 goto B move r
from A read 1 write 1 goto B move l
from B read 0 write 1 goto A move l
from B read 1 write 1 goto H move r`,
		},
		Expect: Expectation{State: "H", Steps: 6, Tape: "1 1 [1] 1 "},
	},
}
