package paritymatrix

import (
	"fmt"
	"sort"

	"github.com/bits-and-blooms/bitset"
	"github.com/mwpf-decode/mwpf/hypergraph"
)

// Matrix is a parity-check matrix A·x = b over GF(2): columns are edge
// variables, rows are vertex constraints.
type Matrix struct {
	// columns, in insertion order; colIndex is the reverse lookup.
	columns  []hypergraph.EdgeIndex
	colIndex map[hypergraph.EdgeIndex]int

	// tight tracks, per column, whether the edge is currently tight.
	// RowEchelonForm does not read it; callers pick the visible columns by
	// the column order they pass (TightColumns gives the tight ones).
	tight *bitset.BitSet

	// rows, in insertion order; rowIndex is the reverse lookup by vertex id.
	rows     []row
	rowIndex map[hypergraph.VertexIndex]int
	rowVtx   []hypergraph.VertexIndex
}

// New returns an empty parity matrix.
func New() *Matrix {
	return &Matrix{
		colIndex: make(map[hypergraph.EdgeIndex]int),
		tight:    bitset.New(0),
		rowIndex: make(map[hypergraph.VertexIndex]int),
	}
}

// AddVariable appends a zero column for edgeID. Idempotent: a repeat call
// for an edge already present is a no-op.
func (m *Matrix) AddVariable(edgeID hypergraph.EdgeIndex) {
	if _, ok := m.colIndex[edgeID]; ok {
		return
	}
	col := len(m.columns)
	m.columns = append(m.columns, edgeID)
	m.colIndex[edgeID] = col
	m.tight.Clear(uint(col)) // new columns default to not-tight

	numCols := len(m.columns)
	for i := range m.rows {
		m.rows[i] = m.rows[i].grow(numCols)
	}
}

// UpdateEdgeTightness sets whether edgeID's column is currently tight.
// The flag is read by IsTight and TightColumns only; RowEchelonForm uses
// every column named in its columnOrder, tight or not. Panics if edgeID was
// never added.
func (m *Matrix) UpdateEdgeTightness(edgeID hypergraph.EdgeIndex, tight bool) {
	col := m.mustCol(edgeID)
	if tight {
		m.tight.Set(uint(col))
	} else {
		m.tight.Clear(uint(col))
	}
}

// IsTight reports the current tightness flag for edgeID.
func (m *Matrix) IsTight(edgeID hypergraph.EdgeIndex) bool {
	col := m.mustCol(edgeID)
	return m.tight.Test(uint(col))
}

// TightColumns returns the edge ids currently flagged tight, in ascending
// column-insertion order. Useful as a ready-made column_order for
// RowEchelonForm ("satisfiable using only tight edges").
func (m *Matrix) TightColumns() []hypergraph.EdgeIndex {
	out := make([]hypergraph.EdgeIndex, 0, len(m.columns))
	for col, edgeID := range m.columns {
		if m.tight.Test(uint(col)) {
			out = append(out, edgeID)
		}
	}
	return out
}

// Columns returns every column's edge id, in insertion order.
func (m *Matrix) Columns() []hypergraph.EdgeIndex {
	out := make([]hypergraph.EdgeIndex, len(m.columns))
	copy(out, m.columns)
	return out
}

// AddConstraint appends a row for vertexID: ones in the columns of
// incidentEdges that are already variables of this matrix (edges not yet
// added via AddVariable simply do not appear in the row — they belong to
// some other cluster's submatrix), and parityBit as the RHS. Idempotent per
// vertexID: a repeat call for a vertex already present overwrites its row
// rather than appending a duplicate.
func (m *Matrix) AddConstraint(vertexID hypergraph.VertexIndex, incidentEdges []hypergraph.EdgeIndex, parityBit bool) {
	r := newRow(len(m.columns))
	r.setRHS(parityBit)
	for _, e := range incidentEdges {
		if col, ok := m.colIndex[e]; ok {
			r.setCol(col, true)
		}
	}
	if idx, ok := m.rowIndex[vertexID]; ok {
		m.rows[idx] = r
		return
	}
	idx := len(m.rows)
	m.rowIndex[vertexID] = idx
	m.rowVtx = append(m.rowVtx, vertexID)
	m.rows = append(m.rows, r)
}

// NumColumns returns the number of edge variables.
func (m *Matrix) NumColumns() int { return len(m.columns) }

// NumRows returns the number of vertex constraints.
func (m *Matrix) NumRows() int { return len(m.rows) }

func (m *Matrix) mustCol(edgeID hypergraph.EdgeIndex) int {
	col, ok := m.colIndex[edgeID]
	if !ok {
		panic(fmt.Sprintf("paritymatrix: edge %d is not a column of this matrix", edgeID))
	}
	return col
}

// HairReorder returns a permutation of this matrix's columns (by edge id)
// with every edge in hairEdges moved to the end, relative order preserved
// otherwise, so that hair columns become independent variables wherever
// possible when fed to RowEchelonForm.
func (m *Matrix) HairReorder(hairEdges []hypergraph.EdgeIndex) []hypergraph.EdgeIndex {
	isHair := make(map[hypergraph.EdgeIndex]bool, len(hairEdges))
	for _, e := range hairEdges {
		isHair[e] = true
	}
	head := make([]hypergraph.EdgeIndex, 0, len(m.columns))
	tail := make([]hypergraph.EdgeIndex, 0, len(hairEdges))
	for _, e := range m.columns {
		if isHair[e] {
			tail = append(tail, e)
		} else {
			head = append(head, e)
		}
	}
	sort.Slice(tail, func(i, j int) bool { return tail[i] < tail[j] })
	return append(head, tail...)
}
