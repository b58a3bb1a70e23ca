package plugins

import (
	"sort"

	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/invalidsubgraph"
	"github.com/mwpf-decode/mwpf/paritymatrix"
	"github.com/mwpf-decode/mwpf/rational"
	"github.com/mwpf-decode/mwpf/relaxer"
)

// SingleHair looks for a cheaper move than UnionFind's whole-cluster grow:
// for each positive dual node, it reorders the cluster's parity matrix with
// that node's hair pushed last and row-reduces it. If exactly one hair edge
// ends up both a dependent (pivot) column and set in the resulting
// solution, adding that edge to the node's subgraph is the single change
// needed to make the rest of its hair slack — so SingleHair proposes
// growing that extended subgraph instead of the whole cluster.
//
// MaxRepetition bounds how many scan rounds a single FindRelaxers call
// runs: each round removes from consideration any node it already found a
// relaxer for, then rescans what's left. A MaxRepetition of 1 reproduces
// the "Once" strategy; zero or negative repeats until a round finds
// nothing new.
type SingleHair struct {
	MaxRepetition int
}

// Once returns the single-scan variant.
func Once() *SingleHair { return &SingleHair{MaxRepetition: 1} }

// Multiple returns the variant that rescans up to maxRepetition times,
// stopping early at the first round that finds nothing new.
func Multiple(maxRepetition int) *SingleHair { return &SingleHair{MaxRepetition: maxRepetition} }

// FindRelaxers implements Plugin.
func (p *SingleHair) FindRelaxers(c *Cluster) ([]*relaxer.Relaxer, error) {
	if len(c.Vertices) == 0 {
		return nil, ErrEmptyCluster
	}

	pending := make([]*dualmodule.DualNode, 0, len(c.PositiveDuals))
	for _, n := range c.PositiveDuals {
		if n.DualVariable().IsPositive() {
			pending = append(pending, n)
		}
	}

	rounds := p.MaxRepetition
	if rounds <= 0 {
		rounds = len(pending) + 1
	}

	var out []*relaxer.Relaxer
	for round := 0; round < rounds && len(pending) > 0; round++ {
		var remaining []*dualmodule.DualNode
		foundAny := false
		for _, n := range pending {
			rlx := p.findForNode(c, n)
			if rlx == nil {
				remaining = append(remaining, n)
				continue
			}
			out = append(out, rlx)
			foundAny = true
		}
		pending = remaining
		if !foundAny {
			break
		}
	}
	return out, nil
}

// findForNode looks for exactly one single-hair escape for n, returning nil
// if there isn't one.
func (p *SingleHair) findForNode(c *Cluster, n *dualmodule.DualNode) *relaxer.Relaxer {
	hair := n.Subgraph.Hair()
	if len(hair) == 0 {
		return nil
	}

	pm := paritymatrix.New()
	for _, e := range c.TightEdges {
		pm.AddVariable(e)
	}
	for _, e := range hair {
		pm.AddVariable(e)
	}
	for _, v := range c.Vertices {
		pm.AddConstraint(v, c.Graph.EdgesOf(v), c.Graph.IsDefect(v))
	}

	order := pm.HairReorder(hair)
	info := pm.RowEchelonForm(order)
	if !info.Satisfiable {
		return nil
	}
	sol, _ := info.GetSolution()
	inSolution := make(map[hypergraph.EdgeIndex]bool, len(sol))
	for _, e := range sol {
		inSolution[e] = true
	}

	var single hypergraph.EdgeIndex
	count := 0
	for _, e := range hair {
		if _, isPivot := info.PivotRowOf[e]; isPivot && inSolution[e] {
			count++
			single = e
		}
	}
	if count != 1 {
		return nil
	}

	grownEdges := append(append([]hypergraph.EdgeIndex(nil), n.Subgraph.Edges()...), single)
	grown := invalidsubgraph.NewComplete(c.Graph, n.Subgraph.Vertices(), grownEdges)

	// Replacing n with grown is a two-part move: grow the extended
	// subgraph and shrink the one it supersedes at the same unit rate, so
	// n's dual variable heads back to zero instead of growing alongside
	// grown forever.
	direction := []relaxer.DirectionTerm{
		{Subgraph: grown, Rate: rational.One()},
		{Subgraph: n.Subgraph, Rate: rational.One().Neg()},
	}

	delta := make(map[hypergraph.EdgeIndex]rational.Rational)
	for _, term := range direction {
		for _, e := range term.Subgraph.Hair() {
			prev, ok := delta[e]
			if !ok {
				prev = rational.Zero()
			}
			delta[e] = prev.Add(term.Rate)
		}
	}
	edges := make([]hypergraph.EdgeIndex, 0, len(delta))
	for e := range delta {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })

	growing := make([]relaxer.GrowingEdge, 0, len(edges))
	for _, e := range edges {
		if rate := delta[e]; rate.IsPositive() {
			growing = append(growing, relaxer.GrowingEdge{Edge: e, LocalRate: rate})
		}
	}
	return relaxer.New(direction, growing)
}
