/*
Package domain contains the core domain models of the Turing engine.

It defines the entities of a single-tape machine: symbols, transitions, machine
parameters and the execution result. The package is kept pure and free of I/O
or persistence, following Hexagonal Architecture principles.

# Key Entities

  - Transition: A rule mapping (state, read symbol) to (write symbol, next state, head move).
  - MachineParams: The start state and the empty symbol of a machine.
  - Machine: A compiled description (ordered transition table + params + diagnostics).
  - Program: The raw, uninterpreted description and tape text.
  - Result: The final state, head position and tape rendering of a halted run.
*/
package domain
