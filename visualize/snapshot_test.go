package visualize_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mwpf-decode/mwpf/dualmodule"
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/invalidsubgraph"
	"github.com/mwpf-decode/mwpf/rational"
	"github.com/mwpf-decode/mwpf/visualize"
	"github.com/stretchr/testify/require"
)

func pairGraph(t *testing.T) *hypergraph.DecodingHyperGraph {
	t.Helper()
	g, err := hypergraph.New(&hypergraph.Initializer{
		VertexCount: 2,
		Edges: []hypergraph.EdgeDef{
			{Endpoints: []hypergraph.VertexIndex{0, 1}, Weight: rational.FromInt64(2)},
		},
	})
	require.NoError(t, err)
	require.NoError(t, g.SetSyndrome(hypergraph.SyndromePattern{DefectVertices: []hypergraph.VertexIndex{0, 1}}))
	return g
}

func TestCaptureReflectsDefectsAndSlack(t *testing.T) {
	g := pairGraph(t)
	dual := dualmodule.New(g)

	sub := invalidsubgraph.NewComplete(g, []hypergraph.VertexIndex{0}, nil)
	node := dual.AddDualNode(sub)
	dual.SetGrowRate(node, rational.One())
	dual.Grow(rational.One())

	snap := visualize.Capture("snap-1", g, dual)

	require.Equal(t, "snap-1", snap.ID)
	require.Len(t, snap.Nodes, 2)
	require.True(t, snap.Nodes[0].IsDefect)
	require.True(t, snap.Nodes[1].IsDefect)

	require.Len(t, snap.Edges, 1)
	require.Equal(t, "2", snap.Edges[0].Weight)
	require.Equal(t, "1", snap.Edges[0].Slack)
	require.False(t, snap.Edges[0].Tight)

	require.Len(t, snap.Duals, 1)
	require.Equal(t, "1", snap.Duals[0].DualVariable)
	require.Equal(t, "1", snap.Duals[0].GrowRate)
}

func TestSinkEmitsValidJSON(t *testing.T) {
	g := pairGraph(t)
	dual := dualmodule.New(g)

	var buf bytes.Buffer
	sink := visualize.NewSink(&buf)
	require.NoError(t, sink.Emit(g, dual))

	var decoded visualize.Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.NotEmpty(t, decoded.ID)
	require.Len(t, decoded.Nodes, 2)
	require.Len(t, decoded.Edges, 1)
}
