package plugins

import (
	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/relaxer"
)

// Cluster is the slice of decoder state a plugin needs to propose relaxers
// for one connected group of dual nodes: the underlying graph, the
// cluster's vertex set, the edges currently tight within it, and its dual
// nodes whose dual variable is currently positive.
type Cluster struct {
	Graph         *hypergraph.DecodingHyperGraph
	Vertices      []hypergraph.VertexIndex
	TightEdges    []hypergraph.EdgeIndex
	PositiveDuals []*dualmodule.DualNode
}

// Plugin searches a cluster for relaxers: directions to grow or shrink dual
// variables that make progress toward a feasible decode. A plugin that
// finds nothing returns a nil slice and a nil error; it is never required
// to find anything.
type Plugin interface {
	FindRelaxers(cluster *Cluster) ([]*relaxer.Relaxer, error)
}
