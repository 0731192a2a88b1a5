// Package schema holds the target Cap'n Proto type vocabulary and the
// discovery store: the per-run registry of every structured record and
// synthesized optional wrapper the classifier has seen.
//
// The store only grows during a run. Records are written last-write-wins
// by the walker, stubs and wrappers are registered as classifier side
// effects, and the emitter reads the whole thing once at the end.
package schema
