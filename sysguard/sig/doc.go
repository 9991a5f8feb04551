// Package sig owns process signal disposition for server processes.
//
// Two independent tracks exist. Termination-class signals (SIGTERM, SIGINT,
// SIGQUIT, SIGHUP) set a process-wide shutdown flag that transitions false to
// true exactly once and is never reset. Fatal-class signals (SIGSEGV, SIGBUS,
// SIGABRT, SIGILL, SIGFPE) route through a Reporter that emits a backtrace to
// stderr in a single vectored write, restores the default disposition, and
// re-raises so the OS default action completes. The fatal path never returns
// to normal execution; its job is observability before termination.
//
// Everything the fatal path touches is pre-allocated or bounded. The only
// logging it performs goes through log.SignalLog, the raw signal-safe path.
package sig
