package relaxer

import (
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/invalidsubgraph"
	"github.com/mwpf-decode/mwpf/rational"
)

// DirectionTerm is one signed contribution to a Relaxer's direction: grow
// Subgraph's dual variable at Rate if Rate is positive, shrink it if
// negative.
type DirectionTerm struct {
	Subgraph *invalidsubgraph.InvalidSubgraph
	Rate     rational.Rational
}

// GrowingEdge is the net effect a Relaxer's direction has on one
// currently-untight edge: how fast its slack shrinks, summed over every
// direction term whose subgraph's hair contains the edge.
type GrowingEdge struct {
	Edge      hypergraph.EdgeIndex
	LocalRate rational.Rational
}

// Relaxer is a proposed move: grow/shrink a handful of dual variables by
// the given rates, summarized by the untightening it causes on each
// currently-untight edge it touches.
type Relaxer struct {
	Direction []DirectionTerm
	Growing   []GrowingEdge
}

// New builds a Relaxer from its direction terms and precomputed growing-edge
// summary. The caller is responsible for having derived Growing correctly
// from Direction; SanityCheck verifies that derivation.
func New(direction []DirectionTerm, growing []GrowingEdge) *Relaxer {
	return &Relaxer{Direction: direction, Growing: growing}
}

// SanityCheck verifies internal consistency: every direction term has a
// nonzero rate, and for every growing edge its LocalRate equals the sum of
// rates of direction terms whose subgraph's hair contains it, and that sum
// is nonnegative.
func (r *Relaxer) SanityCheck() error {
	for _, term := range r.Direction {
		if term.Rate.IsZero() {
			return ErrZeroRate
		}
	}

	computed := make(map[hypergraph.EdgeIndex]rational.Rational)
	for _, term := range r.Direction {
		for _, e := range term.Subgraph.Hair() {
			prev, ok := computed[e]
			if !ok {
				prev = rational.Zero()
			}
			computed[e] = prev.Add(term.Rate)
		}
	}

	for _, g := range r.Growing {
		sum, ok := computed[g.Edge]
		if !ok {
			sum = rational.Zero()
		}
		if sum.Cmp(g.LocalRate) != 0 {
			return ErrNegativeLocalRate
		}
		if sum.IsNegative() {
			return ErrNegativeLocalRate
		}
	}
	return nil
}

// ValidateAgainst checks this relaxer against the current state of a
// conflict round: isTight reports whether an edge is currently tight, and
// positiveDuals is the set of invalid-subgraph digests whose dual variable
// is currently nonzero. A relaxer that would grow an already-tight edge, or
// shrink a dual node already at zero, is rejected — the forest must stay
// consistent with what has actually been applied so far this round.
func (r *Relaxer) ValidateAgainst(isTight func(hypergraph.EdgeIndex) bool, positiveDuals map[uint64]bool) error {
	if err := r.SanityCheck(); err != nil {
		return err
	}
	for _, g := range r.Growing {
		if isTight(g.Edge) {
			return ErrGrowsTightEdge
		}
	}
	for _, term := range r.Direction {
		if term.Rate.IsNegative() && !positiveDuals[term.Subgraph.Digest()] {
			return ErrShrinksZeroDual
		}
	}
	return nil
}
