// Package script owns the textual program format.
//
// Ownership boundary:
// - line grammar for the seven instruction shapes
// - program parsing with line-numbered errors
// - canonical rendering back to text
package script
