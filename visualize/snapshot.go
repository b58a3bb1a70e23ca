package visualize

import (
	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
)

// VertexSnapshot is one vertex's visualized state.
type VertexSnapshot struct {
	Index    hypergraph.VertexIndex `json:"index"`
	IsDefect bool                   `json:"is_defect"`
}

// EdgeSnapshot is one hyperedge's visualized state. Slack is rendered as
// rational.Rational's String form ("numer/den", or "numer" for a whole
// number) rather than split numer/denom integer
// fields: the build-tagged float variant of rational.Rational has no
// numerator/denominator to split, and a single portable field keeps the
// snapshot schema identical across both builds.
type EdgeSnapshot struct {
	Index  hypergraph.EdgeIndex `json:"index"`
	Weight string               `json:"weight"`
	Tight  bool                 `json:"tight"`
	Slack  string               `json:"slack"`
}

// DualNodeSnapshot is one dual variable's visualized state.
type DualNodeSnapshot struct {
	Index           uint64                 `json:"index"`
	InvalidSubgraph []hypergraph.EdgeIndex `json:"invalid_subgraph"`
	DualVariable    string                 `json:"dual_variable"`
	GrowRate        string                 `json:"grow_rate"`
}

// Snapshot is one point-in-time JSON document describing a decoder's full
// visible state: every vertex, every edge, and every live dual node.
type Snapshot struct {
	ID    string             `json:"id"`
	Nodes []VertexSnapshot   `json:"vertices"`
	Edges []EdgeSnapshot     `json:"edges"`
	Duals []DualNodeSnapshot `json:"dual_nodes"`
}

// Capture renders the current state of g and dual into a Snapshot, without
// mutating either.
func Capture(id string, g *hypergraph.DecodingHyperGraph, dual *dualmodule.Module) Snapshot {
	snap := Snapshot{ID: id}

	for v := hypergraph.VertexIndex(0); v < g.VertexCount(); v++ {
		snap.Nodes = append(snap.Nodes, VertexSnapshot{
			Index:    v,
			IsDefect: g.IsDefect(v),
		})
	}

	for e := hypergraph.EdgeIndex(0); e < hypergraph.EdgeIndex(g.EdgeCount()); e++ {
		snap.Edges = append(snap.Edges, EdgeSnapshot{
			Index:  e,
			Weight: g.WeightOf(e).String(),
			Tight:  dual.IsEdgeTight(e),
			Slack:  dual.Slack(e).String(),
		})
	}

	for _, n := range dual.Nodes() {
		snap.Duals = append(snap.Duals, DualNodeSnapshot{
			Index:           n.Index,
			InvalidSubgraph: append([]hypergraph.EdgeIndex(nil), n.Subgraph.Edges()...),
			DualVariable:    n.DualVariable().String(),
			GrowRate:        n.GrowRate().String(),
		})
	}

	return snap
}
