// Package scramble owns the in-memory scrambling engine.
//
// Ownership boundary:
// - unique-rune buffer primitives
// - closed operation set
// - forward and inverse semantics
// - program execution in both directions
package scramble
