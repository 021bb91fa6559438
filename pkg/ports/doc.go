/*
Package ports defines the driven and driving ports (interfaces) of the turing engine.

These interfaces decouple the interpreter from storage backends and from the
adapters that expose it.

# Key Interfaces

  - ProgramStore: persists named programs (memory, file, redis).
  - ProgramLoader: reads curated programs (loam directory, built-in samples).
  - Executor: the engine as seen by the HTTP and MCP adapters.
*/
package ports
