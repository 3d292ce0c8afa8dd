// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (popup overlay compositor, padding)
//
// Not allowed here:
// - key handling, picker state transitions, or calendar arithmetic
package widgets
