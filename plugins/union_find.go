package plugins

import (
	"github.com/mwpf-decode/mwpf/invalidsubgraph"
	"github.com/mwpf-decode/mwpf/paritymatrix"
	"github.com/mwpf-decode/mwpf/rational"
	"github.com/mwpf-decode/mwpf/relaxer"
)

// UnionFind is the fallback plugin every cluster can always fall back on:
// it tests whether the cluster's tight edges alone can satisfy every
// vertex's parity requirement, and if not, proposes growing the entire
// cluster as a single invalid subgraph. Cheap, and guaranteed to make
// progress whenever the cluster is not already resolved, so a decode loop
// that uses only this plugin still terminates.
type UnionFind struct{}

// FindRelaxers implements Plugin.
func (UnionFind) FindRelaxers(c *Cluster) ([]*relaxer.Relaxer, error) {
	if len(c.Vertices) == 0 {
		return nil, ErrEmptyCluster
	}

	pm := paritymatrix.New()
	for _, e := range c.TightEdges {
		pm.AddVariable(e)
	}
	for _, v := range c.Vertices {
		pm.AddConstraint(v, c.Graph.EdgesOf(v), c.Graph.IsDefect(v))
	}
	info := pm.RowEchelonForm(c.TightEdges)
	if info.Satisfiable {
		return nil, nil
	}

	whole := invalidsubgraph.NewComplete(c.Graph, c.Vertices, c.TightEdges)
	growing := make([]relaxer.GrowingEdge, 0, len(whole.Hair()))
	for _, e := range whole.Hair() {
		growing = append(growing, relaxer.GrowingEdge{Edge: e, LocalRate: rational.One()})
	}
	rlx := relaxer.New(
		[]relaxer.DirectionTerm{{Subgraph: whole, Rate: rational.One()}},
		growing,
	)
	return []*relaxer.Relaxer{rlx}, nil
}
