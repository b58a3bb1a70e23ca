package primalmodule

import (
	"sort"
	"time"

	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/invalidsubgraph"
	"github.com/mwpf-decode/mwpf/plugins"
	"github.com/mwpf-decode/mwpf/rational"
	"github.com/mwpf-decode/mwpf/relaxer"
	"github.com/rs/zerolog"
)

// GrowingStrategy chooses how the initial per-defect-vertex dual nodes are
// started off.
type GrowingStrategy int

const (
	// MultipleClusters grows every defect vertex's dual node at +1
	// simultaneously, letting clusters form and resolve independently.
	MultipleClusters GrowingStrategy = iota
	// SingleCluster grows only the oldest unresolved dual node at a time,
	// zeroing the rest, so clusters are solved one after another.
	SingleCluster
)

// Manager runs the decode loop: repeatedly asking the dual module for the
// next update length, merging vertices into clusters on conflict, and
// consulting clusters' plugins to keep each one moving toward a resolved
// (internally satisfiable) state.
type Manager struct {
	g    *hypergraph.DecodingHyperGraph
	dual *dualmodule.Module

	pluginList []plugins.Plugin

	strategy         GrowingStrategy
	clusterNodeLimit uint64
	deadline         time.Time // zero value means no deadline

	logger zerolog.Logger

	dsu              *vertexDSU
	clusters         map[hypergraph.VertexIndex]*Cluster
	nodeOwnerVertex  map[uint64]hypergraph.VertexIndex
	bySubgraphDigest map[uint64]*dualmodule.DualNode
}

// New returns a Manager over g and dual, ready to Decode. pluginList is
// tried in order for every cluster that still needs progress.
func New(g *hypergraph.DecodingHyperGraph, dual *dualmodule.Module, pluginList []plugins.Plugin, strategy GrowingStrategy, clusterNodeLimit uint64, logger zerolog.Logger) *Manager {
	return &Manager{
		g:                g,
		dual:             dual,
		pluginList:       pluginList,
		strategy:         strategy,
		clusterNodeLimit: clusterNodeLimit,
		logger:           logger,
	}
}

// SetDeadline sets the wall-clock time after which Decode falls back to the
// best echelon-satisfiable solution for every unresolved cluster. The zero
// value (the default) means no deadline.
func (m *Manager) SetDeadline(deadline time.Time) { m.deadline = deadline }

// Reset drops every dual node and cluster, ready for a new syndrome over
// the same graph.
func (m *Manager) Reset() {
	m.dual.Clear()
	m.dsu = newVertexDSU()
	m.clusters = make(map[hypergraph.VertexIndex]*Cluster)
	m.nodeOwnerVertex = make(map[uint64]hypergraph.VertexIndex)
	m.bySubgraphDigest = make(map[uint64]*dualmodule.DualNode)
}

// Result is what Decode extracts once every cluster is resolved (or the
// deadline forces a fallback).
type Result struct {
	Subgraph   []hypergraph.EdgeIndex
	LowerBound rational.Rational
	UpperBound rational.Rational
	TimedOut   bool
}

// Decode runs the growth/conflict loop to completion (or timeout) for the
// given defect vertices and returns the extracted subgraph and weight
// bounds.
func (m *Manager) Decode(defects []hypergraph.VertexIndex) Result {
	m.Reset()
	if len(defects) == 0 {
		return Result{LowerBound: rational.Zero(), UpperBound: rational.Zero()}
	}

	for i, v := range defects {
		s := invalidsubgraph.NewComplete(m.g, []hypergraph.VertexIndex{v}, nil)
		n := m.dual.AddDualNode(s)
		m.bySubgraphDigest[s.Digest()] = n
		m.attachNode(n)
		rate := rational.One()
		if m.strategy == SingleCluster && i != 0 {
			rate = rational.Zero()
		}
		m.dual.SetGrowRate(n, rate)
	}

	timedOut := false
outer:
	for {
		if m.pastDeadline() {
			timedOut = true
			break
		}
		group := m.dual.ComputeMaximumUpdateLength()
		if length, ok := group.ValidGrowth(); ok {
			m.dual.Grow(length)
			continue
		}
		if group.IsUnbounded() {
			// SingleCluster: hand growth to the oldest idle node of a cluster
			// that is still unresolved.
			if m.strategy == SingleCluster {
				for _, n := range m.dual.Nodes() {
					if c := m.clusterOfNode(n.Index); c != nil && !c.resolved && n.GrowRate().IsZero() {
						m.dual.SetGrowRate(n, rational.One())
						continue outer
					}
				}
			}
			break
		}

		touched := make(map[hypergraph.VertexIndex]*Cluster)
		for _, ev := range group.Conflicts() {
			switch ev.Kind {
			case dualmodule.EventConflicting:
				c := m.mergeOnEdge(ev.Edge)
				if c != nil {
					m.logger.Debug().Uint64("edge", uint64(ev.Edge)).Msg("primalmodule: edge went tight, merging cluster")
					touched[m.clusterRoot(c)] = c
				}
			case dualmodule.EventShrinkProhibited:
				node := m.dual.Nodes()[ev.Node]
				m.dual.SetGrowRate(node, rational.Zero())
				c := m.clusterOfNode(ev.Node)
				if c != nil {
					touched[m.clusterRoot(c)] = c
				}
			}
		}

		// Cursor resets happen inside mergeVertices itself, only on a
		// genuine structural merge — a recurring conflict on an edge whose
		// endpoints are already in the same cluster must not rewind
		// progress already made scanning this round's plugin list, or the
		// cursor would never reach exhaustion.
		for _, c := range touched {
			m.resolveCluster(c)
		}

		for _, c := range m.clusters {
			if !c.resolved {
				continue outer
			}
		}
		break
	}

	return m.extract(timedOut)
}

func (m *Manager) pastDeadline() bool {
	return !m.deadline.IsZero() && !timeNow().Before(m.deadline)
}

// timeNow is indirected so tests never need a real deadline to exercise the
// timeout path; production code always calls time.Now.
var timeNow = time.Now

func (m *Manager) clusterRoot(c *Cluster) hypergraph.VertexIndex {
	for v := range c.vertices {
		return m.dsu.find(v)
	}
	return 0
}

func (m *Manager) ensureCluster(v hypergraph.VertexIndex) *Cluster {
	r := m.dsu.find(v)
	c, ok := m.clusters[r]
	if !ok {
		c = newCluster()
		c.vertices[v] = struct{}{}
		m.clusters[r] = c
	}
	return c
}

func (m *Manager) mergeVertices(a, b hypergraph.VertexIndex) *Cluster {
	m.ensureCluster(a)
	m.ensureCluster(b)
	winner, loser, changed := m.dsu.union(a, b)
	wc := m.ensureCluster(winner)
	if !changed {
		return wc
	}
	if lc, ok := m.clusters[loser]; ok {
		for v := range lc.vertices {
			wc.vertices[v] = struct{}{}
		}
		for idx, n := range lc.nodes {
			wc.nodes[idx] = n
		}
		if !lc.resolved {
			wc.resolved = false
		}
		delete(m.clusters, loser)
	}
	wc.pluginCursor = 0
	wc.pluginRound = 0
	return wc
}

// mergeOnEdge pulls e's endpoints into one cluster, creating singleton
// clusters for any endpoint not yet owned by one.
func (m *Manager) mergeOnEdge(e hypergraph.EdgeIndex) *Cluster {
	endpoints := m.g.VerticesOf(e)
	if len(endpoints) == 0 {
		return nil
	}
	base := endpoints[0]
	c := m.ensureCluster(base)
	for _, v := range endpoints[1:] {
		c = m.mergeVertices(base, v)
	}
	return c
}

// attachNode pulls together every cluster touching node's subgraph
// vertices and adds node to the result.
func (m *Manager) attachNode(node *dualmodule.DualNode) *Cluster {
	vs := node.Subgraph.Vertices()
	if len(vs) == 0 {
		return nil
	}
	base := vs[0]
	c := m.ensureCluster(base)
	for _, v := range vs[1:] {
		c = m.mergeVertices(base, v)
	}
	c.nodes[node.Index] = node
	m.nodeOwnerVertex[node.Index] = base
	return c
}

func (m *Manager) clusterOfNode(idx uint64) *Cluster {
	v, ok := m.nodeOwnerVertex[idx]
	if !ok {
		return nil
	}
	return m.ensureCluster(v)
}

// tightEdgesOf returns every edge currently usable by this cluster's parity
// search: edges that are slack-tight right now, plus every edge already
// folded into a cluster node's subgraph as a member. A relaxer like
// SingleHair's that grows an extension and shrinks the node it replaces can
// leave a member edge's slack reverted (nothing's hair claims it any more),
// but the edge was only ever absorbed because it is part of the solution
// being assembled — dropping it here would let it vanish from every later
// parity search and extraction, even though it is committed.
func (m *Manager) tightEdgesOf(c *Cluster) []hypergraph.EdgeIndex {
	seen := make(map[hypergraph.EdgeIndex]struct{})
	for v := range c.vertices {
		for _, e := range m.g.EdgesOf(v) {
			if m.dual.IsEdgeTight(e) {
				seen[e] = struct{}{}
			}
		}
	}
	for _, n := range c.Nodes() {
		for _, e := range n.Subgraph.Edges() {
			seen[e] = struct{}{}
		}
	}
	out := make([]hypergraph.EdgeIndex, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// resolveCluster tries the cluster's current plugin, applies whatever it
// proposes, and either advances the plugin cursor (wrapping around) or, if
// the cluster's vertex count has outgrown its budget, falls back to the
// timeout-style terminal resolution.
func (m *Manager) resolveCluster(c *Cluster) {
	if c.resolved {
		return
	}
	tight := m.tightEdgesOf(c)
	if uint64(len(c.vertices)) > m.clusterNodeLimit {
		m.logger.Warn().Int("vertices", len(c.vertices)).Msg("primalmodule: cluster exceeded node limit, falling back")
		m.finalizeCluster(c)
		return
	}
	if len(m.pluginList) == 0 {
		m.finalizeCluster(c)
		return
	}

	plugin := m.pluginList[c.pluginCursor%len(m.pluginList)]
	cl := &plugins.Cluster{
		Graph:         m.g,
		Vertices:      c.Vertices(),
		TightEdges:    tight,
		PositiveDuals: c.positiveNodes(),
	}
	relaxers, err := plugin.FindRelaxers(cl)
	progressed := false
	if err == nil {
		positives := c.positiveDigestSet()
		for _, r := range relaxers {
			if r.ValidateAgainst(m.dual.IsEdgeTight, positives) != nil {
				continue
			}
			if m.applyRelaxer(r) {
				progressed = true
			}
		}
	} else {
		m.logger.Debug().Err(err).Msg("primalmodule: plugin returned an error, skipping")
	}

	if progressed {
		c.pluginRound = 0
		return
	}

	c.pluginCursor = (c.pluginCursor + 1) % len(m.pluginList)
	c.pluginRound++
	if c.pluginRound < len(m.pluginList) {
		return
	}

	// Every plugin had a turn with no result this pass: either the cluster
	// is already satisfiable using its tight edges, or no plugin (not even
	// the union-find fallback) could make progress — in both cases there is
	// nothing more to try, so the cluster is declared resolved.
	m.finalizeCluster(c)
}

func (m *Manager) finalizeCluster(c *Cluster) {
	c.resolved = true
	for _, n := range c.Nodes() {
		m.dual.SetGrowRate(n, rational.Zero())
	}
}

// applyRelaxer folds a relaxer's direction into the dual module: existing
// dual nodes (matched by subgraph digest) have their grow rate SET to the
// term's rate (never accumulated — the same relaxer is routinely re-proposed
// across rounds without the underlying cluster state having changed, and
// adding would inflate the rate without bound), new ones are created and
// attached to whatever cluster their vertices belong to. Returns whether
// anything actually changed, so a cluster re-proposing an already-applied
// relaxer correctly counts as no progress.
func (m *Manager) applyRelaxer(r *relaxer.Relaxer) bool {
	changed := false
	for _, term := range r.Direction {
		digest := term.Subgraph.Digest()
		node, ok := m.bySubgraphDigest[digest]
		if !ok {
			node = m.dual.AddDualNode(term.Subgraph)
			m.bySubgraphDigest[digest] = node
			m.attachNode(node)
			changed = true
		}
		if node.GrowRate().Cmp(term.Rate) != 0 {
			m.dual.SetGrowRate(node, term.Rate)
			changed = true
		}
	}
	return changed
}

func (m *Manager) extract(timedOut bool) Result {
	var subgraph []hypergraph.EdgeIndex
	upper := rational.Zero()
	infeasible := false
	for _, c := range m.clusters {
		tight := m.tightEdgesOf(c)
		sol, ok := m.dual.FindValidSubgraph(tight, c.Vertices())
		if !ok {
			// No combination of this cluster's tight edges satisfies its
			// vertices' parity: the whole decode is infeasible. Surface it
			// as an empty subgraph with an infinite upper bound rather than
			// reporting a tight-edge set that does not actually solve the
			// cluster's parity constraints.
			infeasible = true
			continue
		}
		for _, e := range sol {
			subgraph = append(subgraph, e)
			upper = upper.Add(m.g.WeightOf(e))
		}
	}
	if infeasible {
		subgraph = nil
		upper = rational.PositiveInfinity()
	}
	sort.Slice(subgraph, func(i, j int) bool { return subgraph[i] < subgraph[j] })

	lower := rational.Zero()
	for _, n := range m.dual.Nodes() {
		lower = lower.Add(n.DualVariable())
	}

	return Result{Subgraph: subgraph, LowerBound: lower, UpperBound: upper, TimedOut: timedOut}
}
