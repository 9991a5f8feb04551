// Package sysguard provides crash-safe diagnostics and process-support
// primitives shared by long-running server processes.
//
// The root package holds dependency-light helpers: environment lookups,
// external command execution, string formatting for single-line logs, and
// context logger plumbing. Specialized concerns live in subpackages:
//
//   - log:    logging interface plus the signal-safe raw emission path
//   - zap:    zap-backed log.Logger adapter
//   - rng:    seeded and cryptographic random generation
//   - ident:  identifier encode/decode and unique ID construction
//   - sig:    termination and fatal signal handling
//   - proc:   process introspection and termination requests
//   - fsutil: random directories and tracked temporary files
package sysguard
