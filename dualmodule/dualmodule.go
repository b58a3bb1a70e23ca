package dualmodule

import (
	"sort"

	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/invalidsubgraph"
	"github.com/mwpf-decode/mwpf/paritymatrix"
	"github.com/mwpf-decode/mwpf/rational"
)

// Module owns every dual node created for one decode and the per-edge
// slack their growth has consumed.
type Module struct {
	g     *hypergraph.DecodingHyperGraph
	nodes []*DualNode

	// slack[e] = weight(e) - sum of duals of every subgraph whose hair
	// contains e, maintained incrementally by Grow.
	slack map[hypergraph.EdgeIndex]rational.Rational

	// netRate[e] = sum of grow rates of every node whose hair contains e,
	// maintained incrementally by SetGrowRate.
	netRate map[hypergraph.EdgeIndex]rational.Rational
}

// New returns an empty dual module over g, with no dual nodes yet.
func New(g *hypergraph.DecodingHyperGraph) *Module {
	return &Module{
		g:       g,
		slack:   make(map[hypergraph.EdgeIndex]rational.Rational),
		netRate: make(map[hypergraph.EdgeIndex]rational.Rational),
	}
}

// Clear drops every dual node and resets all bookkeeping, leaving the
// module ready to decode a new syndrome over the same graph.
func (m *Module) Clear() {
	m.nodes = nil
	m.slack = make(map[hypergraph.EdgeIndex]rational.Rational)
	m.netRate = make(map[hypergraph.EdgeIndex]rational.Rational)
}

// Nodes returns every dual node created so far, in insertion (index) order.
// Callers must not mutate the returned slice.
func (m *Module) Nodes() []*DualNode { return m.nodes }

// AddDualNode creates a new dual node for subgraph, starting at dual
// variable zero and grow rate zero.
func (m *Module) AddDualNode(subgraph *invalidsubgraph.InvalidSubgraph) *DualNode {
	node := &DualNode{
		Index:    uint64(len(m.nodes)),
		Subgraph: subgraph,
		dual:     rational.Zero(),
		growRate: rational.Zero(),
	}
	m.nodes = append(m.nodes, node)
	for _, e := range subgraph.Hair() {
		if _, ok := m.slack[e]; !ok {
			m.slack[e] = m.g.WeightOf(e)
		}
		if _, ok := m.netRate[e]; !ok {
			m.netRate[e] = rational.Zero()
		}
	}
	return node
}

// SetGrowRate changes node's grow rate, adjusting every edge in its hair's
// net rate by the difference.
func (m *Module) SetGrowRate(node *DualNode, rate rational.Rational) {
	delta := rate.Sub(node.growRate)
	node.growRate = rate
	if delta.IsZero() {
		return
	}
	for _, e := range node.Subgraph.Hair() {
		m.netRate[e] = m.netRate[e].Add(delta)
	}
}

// Grow advances every dual node by its grow rate times step, and every
// edge's slack by the corresponding amount. Panics if step is negative.
func (m *Module) Grow(step rational.Rational) {
	if step.IsNegative() {
		panic(ErrNegativeGrowth.Error())
	}
	if step.IsZero() {
		return
	}
	for _, n := range m.nodes {
		if n.growRate.IsZero() {
			continue
		}
		n.dual = n.dual.Add(n.growRate.Mul(step))
	}
	for e, rate := range m.netRate {
		if rate.IsZero() {
			continue
		}
		m.slack[e] = m.slack[e].Sub(rate.Mul(step))
	}
}

// IsEdgeTight reports whether e's slack has reached zero.
func (m *Module) IsEdgeTight(e hypergraph.EdgeIndex) bool {
	s, ok := m.slack[e]
	if !ok {
		return false // no dual node's hair has ever touched e: full weight remains
	}
	return s.IsZero() || s.IsNegative()
}

// Slack returns e's current slack (weight minus sum of duals whose hair
// contains e).
func (m *Module) Slack(e hypergraph.EdgeIndex) rational.Rational {
	if s, ok := m.slack[e]; ok {
		return s
	}
	return m.g.WeightOf(e)
}

// ComputeMaximumUpdateLength bounds the next growth step across every edge
// and dual node currently touched by a nonzero rate: unbounded if none
// impose a limit, a shared positive step if they agree, or the simultaneous
// zero-length conflicts in deterministic tie-break order otherwise.
func (m *Module) ComputeMaximumUpdateLength() *GroupMaxUpdateLength {
	var zero []MaxUpdateLength
	var positive []rational.Rational

	edges := make([]hypergraph.EdgeIndex, 0, len(m.netRate))
	for e := range m.netRate {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i] < edges[j] })
	for _, e := range edges {
		rate := m.netRate[e]
		if !rate.IsPositive() {
			continue // untightening or neutral: this edge imposes no bound
		}
		s := m.slack[e]
		if s.IsZero() || s.IsNegative() {
			zero = append(zero, conflictingEvent(e))
			continue
		}
		positive = append(positive, s.Div(rate))
	}

	for _, n := range m.nodes {
		if !n.growRate.IsNegative() {
			continue
		}
		if n.dual.IsZero() {
			zero = append(zero, shrinkProhibitedEvent(n.Index))
			continue
		}
		positive = append(positive, n.dual.Div(n.growRate.Neg()))
	}

	group := newGroup()
	if len(zero) > 0 {
		sort.SliceStable(zero, func(i, j int) bool {
			a, b := zero[i], zero[j]
			if a.Kind != b.Kind {
				return a.Kind == EventShrinkProhibited // ShrinkProhibited sorts before Conflicting
			}
			if a.Kind == EventShrinkProhibited {
				return a.Node < b.Node
			}
			return a.Edge < b.Edge
		})
		for _, ev := range zero {
			group.add(ev)
		}
		return group
	}
	if len(positive) == 0 {
		group.add(unboundedEvent())
		return group
	}
	for _, p := range positive {
		group.add(validGrowEvent(p))
	}
	return group
}

// FindValidSubgraph searches for a subset of edges (restricted to the given
// edge set) whose inclusion satisfies the parity requirement of every
// vertex in vertices, preferring the joint local-minimum weighted solution.
// Returns false if no subset satisfies the requirement.
func (m *Module) FindValidSubgraph(edges []hypergraph.EdgeIndex, vertices []hypergraph.VertexIndex) ([]hypergraph.EdgeIndex, bool) {
	pm := paritymatrix.New()
	for _, e := range edges {
		pm.AddVariable(e)
	}
	for _, v := range vertices {
		pm.AddConstraint(v, m.g.EdgesOf(v), m.g.IsDefect(v))
	}
	info := pm.RowEchelonForm(edges)
	if !info.Satisfiable {
		return nil, false
	}
	return info.GetJointSolutionLocalMinimum(m.g.WeightOf)
}
