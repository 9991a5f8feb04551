// Package rng provides the process-wide random generation used to mint
// unguessable identifiers (directory names, temp-file suffixes,
// correlation IDs).
//
// Two sources coexist: a seeded generator for cheap numeric draws, and the
// OS entropy source for anything that must resist prediction. Only GetBytes
// (and the string helpers built on it) carry cryptographic strength; the
// seeded path degrades to a low-entropy seed when the OS source is
// unavailable rather than failing.
//
// After the process forks, the child MUST call Reseed before drawing more
// seeded values, otherwise parent and child produce the same sequence and
// every identifier derived from it collides. Pure-goroutine programs never
// fork, so for them the requirement is vacuous.
package rng
