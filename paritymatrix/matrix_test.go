package paritymatrix_test

import (
	"testing"

	"github.com/mwpf-decode/mwpf/paritymatrix"
	"github.com/mwpf-decode/mwpf/rational"
	"github.com/stretchr/testify/require"
)

// repetitionMatrix builds the parity matrix for a small
// repetition hypergraph restricted to the given defect pattern over
// v0..v2, e0={v0,v1}, e1={v1,v2}, e2={v0,v2}.
func repetitionMatrix(defectV0, defectV1, defectV2 bool) *paritymatrix.Matrix {
	m := paritymatrix.New()
	m.AddVariable(0) // e0
	m.AddVariable(1) // e1
	m.AddVariable(2) // e2
	for _, e := range []uint64{0, 1, 2} {
		m.UpdateEdgeTightness(e, true)
	}
	m.AddConstraint(0, []uint64{0, 2}, defectV0) // v0: e0,e2
	m.AddConstraint(1, []uint64{0, 1}, defectV1) // v1: e0,e1
	m.AddConstraint(2, []uint64{1, 2}, defectV2)  // v2: e1,e2
	return m
}

func TestAddVariableIdempotent(t *testing.T) {
	m := paritymatrix.New()
	m.AddVariable(7)
	m.AddVariable(7)
	require.Equal(t, 1, m.NumColumns())
}

func TestAddConstraintIdempotentOverwrites(t *testing.T) {
	m := paritymatrix.New()
	m.AddVariable(0)
	m.AddConstraint(5, []uint64{0}, true)
	m.AddConstraint(5, []uint64{0}, false)
	require.Equal(t, 1, m.NumRows())
	info := m.RowEchelonForm([]uint64{0})
	sol, ok := info.GetSolution()
	require.True(t, ok)
	require.Empty(t, sol)
}

func TestEchelonPairV0V1(t *testing.T) {
	m := repetitionMatrix(true, true, false)
	info := m.RowEchelonForm([]uint64{0, 1, 2})
	require.True(t, info.Satisfiable)
	sol, ok := info.GetSolution()
	require.True(t, ok)
	require.Equal(t, []uint64{0}, sol)
}

func TestEchelonPairV0V2(t *testing.T) {
	m := repetitionMatrix(true, false, true)
	info := m.RowEchelonForm([]uint64{0, 1, 2})
	require.True(t, info.Satisfiable)
	sol, ok := info.GetSolution()
	require.True(t, ok)
	require.Equal(t, []uint64{0, 1}, sol)
}

func TestEchelonAllThreeDefectiveIsInfeasibleOnAPurePairGraph(t *testing.T) {
	// Every edge in this graph has exactly two endpoints, so by the
	// handshake lemma any edge subset flips an even number of vertices.
	// A three-vertex (odd) defect pattern is therefore unsatisfiable here
	// — the hyperedge e3={v0,v1,v2} variant (see solver end-to-end tests)
	// is what actually covers an odd-sized defect set.
	m := repetitionMatrix(true, true, true)
	info := m.RowEchelonForm([]uint64{0, 1, 2})
	require.False(t, info.Satisfiable)
}

func TestEchelonSingleOddVertexUnsatisfiable(t *testing.T) {
	// only v0 defective: repetition code with even-coverage edges cannot
	// flip exactly one vertex.
	m := repetitionMatrix(true, false, false)
	info := m.RowEchelonForm([]uint64{0, 1, 2})
	require.False(t, info.Satisfiable)
	_, ok := info.GetSolution()
	require.False(t, ok)
}

func TestEchelonEmptySyndrome(t *testing.T) {
	m := repetitionMatrix(false, false, false)
	info := m.RowEchelonForm([]uint64{0, 1, 2})
	require.True(t, info.Satisfiable)
	sol, ok := info.GetSolution()
	require.True(t, ok)
	require.Empty(t, sol)
}

func TestGetJointSolutionLocalMinimumImproves(t *testing.T) {
	m := paritymatrix.New()
	m.AddVariable(0) // heavy edge
	m.AddVariable(1) // light edge
	m.UpdateEdgeTightness(0, true)
	m.UpdateEdgeTightness(1, true)
	m.AddConstraint(0, []uint64{0, 1}, true)

	info := m.RowEchelonForm([]uint64{0, 1})
	base, ok := info.GetSolution()
	require.True(t, ok)
	require.Equal(t, []uint64{0}, base)

	weights := map[uint64]rational.Rational{0: rational.FromInt64(5), 1: rational.FromInt64(1)}
	best, ok := info.GetJointSolutionLocalMinimum(func(e uint64) rational.Rational { return weights[e] })
	require.True(t, ok)
	require.Equal(t, []uint64{1}, best)
}

func TestHairReorderMovesHairLast(t *testing.T) {
	m := paritymatrix.New()
	m.AddVariable(0)
	m.AddVariable(1)
	m.AddVariable(2)
	order := m.HairReorder([]uint64{1})
	require.Equal(t, []uint64{0, 2, 1}, order)
}

func TestTightColumns(t *testing.T) {
	m := paritymatrix.New()
	m.AddVariable(0)
	m.AddVariable(1)
	m.UpdateEdgeTightness(1, true)
	require.Equal(t, []uint64{1}, m.TightColumns())
	require.False(t, m.IsTight(0))
	require.True(t, m.IsTight(1))
}

func TestOutOfRangeColumnPanics(t *testing.T) {
	m := paritymatrix.New()
	require.Panics(t, func() { m.IsTight(99) })
}
