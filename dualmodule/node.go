package dualmodule

import (
	"github.com/mwpf-decode/mwpf/invalidsubgraph"
	"github.com/mwpf-decode/mwpf/rational"
)

// DualNode is one dual variable: an invalid subgraph, its current
// nonnegative value, and the rate it is currently being grown (positive),
// shrunk (negative), or held (zero) at.
type DualNode struct {
	Index    uint64
	Subgraph *invalidsubgraph.InvalidSubgraph
	dual     rational.Rational
	growRate rational.Rational
}

// DualVariable returns the node's current value.
func (n *DualNode) DualVariable() rational.Rational { return n.dual }

// GrowRate returns the node's current grow rate.
func (n *DualNode) GrowRate() rational.Rational { return n.growRate }
