// Package dualmodule owns the mutable dual-LP state of a decode: one
// DualNode per invalid subgraph currently carrying a dual variable, the
// per-edge slack (an edge's weight minus the sum of duals of every
// subgraph whose hair contains it), and the global time-step bound before
// the next conflict (an edge going tight while growing, or a dual variable
// hitting zero while shrinking).
//
// Growth is driven from outside: a caller repeatedly asks
// ComputeMaximumUpdateLength, advances by Grow(step) when the result allows
// it, and otherwise hands the reported conflicts to the primal module.
package dualmodule
