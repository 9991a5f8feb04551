// Package log defines the logging interface and typed logging fields, plus
// the raw signal-safe emission path used from signal-handling context.
//
// Adapters (such as the zap package) implement Logger so applications can
// keep logging calls consistent across backends. The SignalLog family never
// allocates and issues a single raw write per call, which is the only kind of
// logging permitted while reporting a fatal signal.
package log
