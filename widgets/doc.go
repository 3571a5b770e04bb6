// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (overlay compositor, corner anchoring, padding)
//
// Not allowed here:
// - key handling, state transitions, timers, or panel policy
package widgets
