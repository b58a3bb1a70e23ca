package relaxer

import "errors"

// Sentinel errors for Relaxer validation.
var (
	// ErrNegativeLocalRate indicates a growing edge's summed rate came out
	// negative, which would shrink an edge's slack instead of growing it.
	// SanityCheck also returns it when a growing edge's LocalRate differs
	// from that summed rate.
	ErrNegativeLocalRate = errors.New("relaxer: growing edge has negative local rate")

	// ErrZeroRate indicates a direction entry was given a zero rate, which
	// contributes nothing and should simply be omitted.
	ErrZeroRate = errors.New("relaxer: direction entry has zero rate")

	// ErrShrinksZeroDual indicates a direction entry proposes a negative
	// rate (shrink) for a dual node whose variable is currently zero,
	// which would drive it negative.
	ErrShrinksZeroDual = errors.New("relaxer: shrinks a dual node that is already at zero")

	// ErrGrowsTightEdge indicates a growing edge is already tight, so
	// growing it further is infeasible.
	ErrGrowsTightEdge = errors.New("relaxer: grows an already-tight edge")
)
