// Package proc provides process introspection helpers and best-effort
// termination requests for sibling processes.
//
// Memory lookups may block on external process creation and pipe I/O; never
// call them from latency-sensitive or signal-handling context.
package proc
