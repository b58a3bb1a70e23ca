package solver_test

import (
	"testing"

	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/plugins"
	"github.com/mwpf-decode/mwpf/rational"
	"github.com/mwpf-decode/mwpf/solver"
	"github.com/stretchr/testify/require"
)

// triangleGraph is the repetition hypergraph used across the end-to-end
// scenarios: v0..v2, e0={v0,v1,w=1}, e1={v1,v2,w=1}, e2={v0,v2,w=3}.
func triangleGraph(t *testing.T) *hypergraph.DecodingHyperGraph {
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

func TestSolveEmptySyndrome(t *testing.T) {
	g := triangleGraph(t)
	s := solver.New(g)

	result, err := s.Solve(hypergraph.SyndromePattern{})
	require.NoError(t, err)
	require.Empty(t, result.Subgraph)
	require.Equal(t, 0, result.WeightRange.Lower.Cmp(rational.Zero()))
	require.Equal(t, 0, result.WeightRange.Upper.Cmp(rational.Zero()))
	require.False(t, result.TimedOut)
}

func TestSolveSingleOddVertexIsInfeasible(t *testing.T) {
	g := triangleGraph(t)
	s := solver.New(g)

	result, err := s.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0}})
	require.NoError(t, err)
	require.Empty(t, result.Subgraph)
	require.True(t, result.WeightRange.Upper.IsInfinite())
}

func TestSolvePairZeroOneReturnsTheCheapEdge(t *testing.T) {
	g := triangleGraph(t)
	s := solver.New(g)

	result, err := s.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1}})
	require.NoError(t, err)
	require.Equal(t, []hypergraph.EdgeIndex{0}, []hypergraph.EdgeIndex(result.Subgraph))
	require.Equal(t, 0, result.WeightRange.Lower.Cmp(rational.FromInt64(1)))
	require.Equal(t, 0, result.WeightRange.Upper.Cmp(rational.FromInt64(1)))
}

func TestSolvePairZeroTwoPrefersTheCheaperTwoEdgeCover(t *testing.T) {
	g := triangleGraph(t)
	s := solver.New(g)

	result, err := s.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 2}})
	require.NoError(t, err)
	// e2 alone (weight 3) also flips {v0,v2}, but {e0,e1} (weight 2) is
	// cheaper and must be what the decoder settles on.
	require.Equal(t, []hypergraph.EdgeIndex{0, 1}, []hypergraph.EdgeIndex(result.Subgraph))
	require.Equal(t, 0, result.WeightRange.Lower.Cmp(rational.FromInt64(2)))
	require.Equal(t, 0, result.WeightRange.Upper.Cmp(rational.FromInt64(2)))
}

// TestSolveAllThreeDefectiveIsInfeasible covers the "all three defective"
// scenario on the plain triangle graph. Every edge here has exactly two
// endpoints, so any edge subset flips an even number of total vertex
// parities (the handshake lemma); three simultaneous defects is an odd
// target and is therefore genuinely unsatisfiable on this graph, not
// [e0, e1] at weight 2 as a literal reading of the scenario's prose might
// suggest — that combination leaves v1 at even parity. The corrected
// expectation is the same infeasibility this graph already exhibits for a
// single defect.
func TestSolveAllThreeDefectiveIsInfeasible(t *testing.T) {
	g := triangleGraph(t)
	s := solver.New(g)

	result, err := s.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1, 2}})
	require.NoError(t, err)
	require.Empty(t, result.Subgraph)
	require.True(t, result.WeightRange.Upper.IsInfinite())
}

// hyperedgeGraph replaces e2 with a single hyperedge spanning all three
// vertices, letting "all three defective" be satisfied in one edge.
func hyperedgeGraph(t *testing.T) *hypergraph.DecodingHyperGraph {
	t.Helper()
	g, err := hypergraph.New(&hypergraph.Initializer{
		VertexCount: 3,
		Edges: []hypergraph.EdgeDef{
			{Endpoints: []hypergraph.VertexIndex{0, 1}, Weight: rational.FromInt64(1)},
			{Endpoints: []hypergraph.VertexIndex{1, 2}, Weight: rational.FromInt64(1)},
			{Endpoints: []hypergraph.VertexIndex{0, 1, 2}, Weight: rational.FromInt64(1)},
		},
	})
	require.NoError(t, err)
	return g
}

func TestSolveHyperedgeCoversAllThreeInOneEdge(t *testing.T) {
	g := hyperedgeGraph(t)
	s := solver.New(g)

	result, err := s.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1, 2}})
	require.NoError(t, err)
	require.Equal(t, []hypergraph.EdgeIndex{2}, []hypergraph.EdgeIndex(result.Subgraph))
	require.Equal(t, 0, result.WeightRange.Lower.Cmp(rational.FromInt64(1)))
	require.Equal(t, 0, result.WeightRange.Upper.Cmp(rational.FromInt64(1)))
}

func TestClearThenSolveMatchesAFreshInstance(t *testing.T) {
	g1 := triangleGraph(t)
	reused := solver.New(g1)

	first, err := reused.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1}})
	require.NoError(t, err)
	require.Equal(t, []hypergraph.EdgeIndex{0}, []hypergraph.EdgeIndex(first.Subgraph))

	reused.Clear()
	second, err := reused.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 2}})
	require.NoError(t, err)

	g2 := triangleGraph(t)
	fresh := solver.New(g2)
	want, err := fresh.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 2}})
	require.NoError(t, err)

	require.Equal(t, []hypergraph.EdgeIndex(want.Subgraph), []hypergraph.EdgeIndex(second.Subgraph))
	require.Equal(t, 0, want.WeightRange.Upper.Cmp(second.WeightRange.Upper))
}

func TestSolveIsDeterministic(t *testing.T) {
	g1 := triangleGraph(t)
	g2 := triangleGraph(t)
	s1 := solver.New(g1)
	s2 := solver.New(g2)

	pattern := hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 2}}
	r1, err := s1.Solve(pattern)
	require.NoError(t, err)
	r2, err := s2.Solve(pattern)
	require.NoError(t, err)

	require.Equal(t, []hypergraph.EdgeIndex(r1.Subgraph), []hypergraph.EdgeIndex(r2.Subgraph))
	require.Equal(t, 0, r1.WeightRange.Lower.Cmp(r2.WeightRange.Lower))
	require.Equal(t, 0, r1.WeightRange.Upper.Cmp(r2.WeightRange.Upper))
}

func TestParsePluginListResolvesRecognizedIdentifiers(t *testing.T) {
	pluginList, err := solver.ParsePluginList([]solver.PluginSpec{
		{Name: "union_find"},
		{Name: "single_hair.once"},
		{Name: "single_hair.multiple", MaxRepetition: 3},
	})
	require.NoError(t, err)
	require.Len(t, pluginList, 3)
}

func TestParsePluginListRejectsUnknownIdentifier(t *testing.T) {
	_, err := solver.ParsePluginList([]solver.PluginSpec{{Name: "bogus"}})
	require.ErrorIs(t, err, solver.ErrUnknownPlugin)
}

// cycleGraph is a 4-vertex cycle v0-e0-v1-e1-v2-e2-v3-e3-v0, every edge
// weight 1, with the two diagonal vertices v0 and v2 defective. v0 and v2
// each touch two edges of the cycle and no edge directly joins the two
// defects, so no single tight edge satisfies both defects the way a direct
// connecting edge would; growing both defects at once makes all four edges
// tight in the same step.
func cycleGraph(t *testing.T) *hypergraph.DecodingHyperGraph {
	t.Helper()
	g, err := hypergraph.New(&hypergraph.Initializer{
		VertexCount: 4,
		Edges: []hypergraph.EdgeDef{
			{Endpoints: []hypergraph.VertexIndex{0, 1}, Weight: rational.FromInt64(1)},
			{Endpoints: []hypergraph.VertexIndex{1, 2}, Weight: rational.FromInt64(1)},
			{Endpoints: []hypergraph.VertexIndex{2, 3}, Weight: rational.FromInt64(1)},
			{Endpoints: []hypergraph.VertexIndex{3, 0}, Weight: rational.FromInt64(1)},
		},
	})
	require.NoError(t, err)
	return g
}

// TestSolveDiamondWithOnlySingleHairFindsTheOptimalCover runs with
// single_hair.once as the ONLY plugin — union-find's whole-cluster fallback
// is not in the list at all, so every relaxer applied to this cluster comes
// from single_hair's grow-the-extension/shrink-the-original move. The decode
// must still finish without timing out on a weight-2 cover whose lower
// bound matches it.
func TestSolveDiamondWithOnlySingleHairFindsTheOptimalCover(t *testing.T) {
	g := cycleGraph(t)
	s := solver.New(g, solver.WithPlugins([]plugins.Plugin{plugins.Once()}))

	result, err := s.Solve(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 2}})
	require.NoError(t, err)
	require.False(t, result.TimedOut)
	// v0 and v2 sit opposite each other on the cycle; {e0, e1} (the path
	// through v1) and {e2, e3} (the path through v3) are the only two
	// minimal covers, both weight 2 — single_hair must still land on a
	// genuinely satisfying combination, not an empty or partial one.
	require.Equal(t, []hypergraph.EdgeIndex{0, 1}, []hypergraph.EdgeIndex(result.Subgraph))
	require.Equal(t, 0, result.WeightRange.Lower.Cmp(rational.FromInt64(2)))
	require.Equal(t, 0, result.WeightRange.Upper.Cmp(rational.FromInt64(2)))
}
