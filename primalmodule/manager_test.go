package primalmodule_test

import (
	"testing"
	"time"

	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/plugins"
	"github.com/mwpf-decode/mwpf/primalmodule"
	"github.com/mwpf-decode/mwpf/rational"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// repetitionGraph builds the small repetition hypergraph: v0..v2,
// e0={v0,v1,w=1}, e1={v1,v2,w=1}, e2={v0,v2,w=3}.
func repetitionGraph(t *testing.T) *hypergraph.DecodingHyperGraph {
	t.Helper()
	g, err := hypergraph.New(&hypergraph.Initializer{
		VertexCount: 3,
		Edges: []hypergraph.EdgeDef{
			{Endpoints: []hypergraph.VertexIndex{0, 1}, Weight: rational.FromInt64(1)},
			{Endpoints: []hypergraph.VertexIndex{1, 2}, Weight: rational.FromInt64(1)},
			{Endpoints: []hypergraph.VertexIndex{0, 2}, Weight: rational.FromInt64(3)},
		},
	})
	require.NoError(t, err)
	return g
}

// newManager builds a manager over the union-find plugin alone: cheap,
// deterministic, and guaranteed to terminate on its own, which keeps these
// traces tractable by hand.
func newManager(t *testing.T, g *hypergraph.DecodingHyperGraph, strategy primalmodule.GrowingStrategy) *primalmodule.Manager {
	t.Helper()
	dual := dualmodule.New(g)
	pluginList := []plugins.Plugin{plugins.UnionFind{}}
	return primalmodule.New(g, dual, pluginList, strategy, 64, zerolog.Nop())
}

func TestDecodeEmptyDefectsIsTrivial(t *testing.T) {
	g := repetitionGraph(t)
	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{}))
	m := newManager(t, g, primalmodule.MultipleClusters)

	result := m.Decode(nil)
	require.Empty(t, result.Subgraph)
	require.Equal(t, 0, result.LowerBound.Cmp(rational.Zero()))
	require.Equal(t, 0, result.UpperBound.Cmp(rational.Zero()))
	require.False(t, result.TimedOut)
}

func TestDecodePairResolvesToTheCheapEdge(t *testing.T) {
	g := repetitionGraph(t)
	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1}}))
	m := newManager(t, g, primalmodule.MultipleClusters)

	result := m.Decode([]hypergraph.VertexIndex{0, 1})
	require.False(t, result.TimedOut)
	require.Equal(t, []hypergraph.EdgeIndex{0}, result.Subgraph)
	require.Equal(t, 0, result.LowerBound.Cmp(rational.FromInt64(1)))
	require.Equal(t, 0, result.UpperBound.Cmp(rational.FromInt64(1)))
}

func TestDecodeSingleDefectIsInfeasible(t *testing.T) {
	g := repetitionGraph(t)
	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0}}))
	m := newManager(t, g, primalmodule.MultipleClusters)

	result := m.Decode([]hypergraph.VertexIndex{0})
	require.False(t, result.TimedOut)
	require.Empty(t, result.Subgraph)
	require.True(t, result.UpperBound.IsInfinite())
}

func TestDecodeRespectsDeadline(t *testing.T) {
	g := repetitionGraph(t)
	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1}}))
	m := newManager(t, g, primalmodule.MultipleClusters)
	m.SetDeadline(time.Now().Add(-time.Second))

	result := m.Decode([]hypergraph.VertexIndex{0, 1})
	require.True(t, result.TimedOut)
}

func TestDecodeSingleClusterStrategyGrowsOneDefectAtATime(t *testing.T) {
	g := repetitionGraph(t)
	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1}}))
	m := newManager(t, g, primalmodule.SingleCluster)

	result := m.Decode([]hypergraph.VertexIndex{0, 1})
	require.False(t, result.TimedOut)
	require.Equal(t, []hypergraph.EdgeIndex{0}, result.Subgraph)
	require.Equal(t, 0, result.LowerBound.Cmp(rational.FromInt64(1)))
	require.Equal(t, 0, result.UpperBound.Cmp(rational.FromInt64(1)))
}

func TestDecodeWithNoPluginsFinalizesImmediatelyOnFirstConflict(t *testing.T) {
	g := repetitionGraph(t)
	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1}}))
	dual := dualmodule.New(g)
	m := primalmodule.New(g, dual, nil, primalmodule.MultipleClusters, 64, zerolog.Nop())

	result := m.Decode([]hypergraph.VertexIndex{0, 1})
	require.False(t, result.TimedOut)
	// With no plugins a cluster is finalized the instant it is touched, so
	// the loop terminates using whatever tight edges the single valid-growth
	// step produced — here e0 alone, already satisfying both vertices.
	require.Equal(t, []hypergraph.EdgeIndex{0}, result.Subgraph)
}

func TestDecodeIsReusableAcrossSyndromes(t *testing.T) {
	g := repetitionGraph(t)
	m := newManager(t, g, primalmodule.MultipleClusters)

	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1}}))
	first := m.Decode([]hypergraph.VertexIndex{0, 1})
	require.Equal(t, []hypergraph.EdgeIndex{0}, first.Subgraph)

	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0}}))
	second := m.Decode([]hypergraph.VertexIndex{0})
	require.True(t, second.UpperBound.IsInfinite())
}
