package primalmodule

import (
	"sort"

	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
)

// Cluster is a connected component of vertices, pulled together by edges
// that have gone tight between them, together with the dual nodes whose
// invalid subgraphs touch it. Clusters are only ever merged, never split.
type Cluster struct {
	vertices map[hypergraph.VertexIndex]struct{}
	nodes    map[uint64]*dualmodule.DualNode

	resolved     bool
	pluginCursor int
	pluginRound  int
}

func newCluster() *Cluster {
	return &Cluster{
		vertices: make(map[hypergraph.VertexIndex]struct{}),
		nodes:    make(map[uint64]*dualmodule.DualNode),
	}
}

// Vertices returns the cluster's vertex set in ascending order.
func (c *Cluster) Vertices() []hypergraph.VertexIndex {
	out := make([]hypergraph.VertexIndex, 0, len(c.vertices))
	for v := range c.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Nodes returns every dual node currently attached to the cluster.
func (c *Cluster) Nodes() []*dualmodule.DualNode {
	out := make([]*dualmodule.DualNode, 0, len(c.nodes))
	for _, n := range c.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// Resolved reports whether the cluster has been finalized: every plugin had
// a turn without progress (or there are no plugins), or its vertex count
// exceeded the node limit. A decode cut short by its deadline leaves
// unresolved clusters unresolved.
func (c *Cluster) Resolved() bool { return c.resolved }

func (c *Cluster) positiveNodes() []*dualmodule.DualNode {
	var out []*dualmodule.DualNode
	for _, n := range c.Nodes() {
		if n.DualVariable().IsPositive() {
			out = append(out, n)
		}
	}
	return out
}

func (c *Cluster) positiveDigestSet() map[uint64]bool {
	out := make(map[uint64]bool, len(c.nodes))
	for _, n := range c.nodes {
		if n.DualVariable().IsPositive() {
			out[n.Subgraph.Digest()] = true
		}
	}
	return out
}
