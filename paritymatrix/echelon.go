package paritymatrix

import (
	"sort"

	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/rational"
)

// EchelonInfo is the result of RowEchelonForm: for each column in the
// requested column_order, whether it is a dependent (pivot) column or an
// independent (free) one, plus overall satisfiability.
type EchelonInfo struct {
	// Satisfiable is true iff no row's restriction to column_order is
	// all-zero while its RHS is 1.
	Satisfiable bool

	// PivotRowOf maps a dependent column's edge id to the vertex id of its
	// pivot row.
	PivotRowOf map[hypergraph.EdgeIndex]hypergraph.VertexIndex

	// Independent lists the columns in column_order that have no pivot,
	// i.e. are free variables, in column_order's relative order.
	Independent []hypergraph.EdgeIndex

	// columnOrder and reduced are kept to let GetSolution /
	// GetJointSolutionLocalMinimum reuse this echelon pass without
	// recomputing it.
	columnOrder []hypergraph.EdgeIndex
	reduced     []row
	colOf       map[hypergraph.EdgeIndex]int // edge id -> original column index (for get/setCol)
	rowOf       map[hypergraph.VertexIndex]int
}

// RowEchelonForm reduces a working copy of the matrix to reduced row
// echelon form, considering only the columns named in columnOrder (edges
// not added via AddVariable, or simply omitted from columnOrder, are
// treated as not present in any row's equation for this call). The stored
// matrix itself is never mutated.
func (m *Matrix) RowEchelonForm(columnOrder []hypergraph.EdgeIndex) EchelonInfo {
	working := make([]row, len(m.rows))
	for i, r := range m.rows {
		working[i] = r.clone()
	}
	used := make([]bool, len(working))
	pivotRowOf := make(map[hypergraph.EdgeIndex]hypergraph.VertexIndex)
	pivotRowIdx := make(map[hypergraph.EdgeIndex]int)
	var independent []hypergraph.EdgeIndex

	for _, edgeID := range columnOrder {
		col, ok := m.colIndex[edgeID]
		if !ok {
			continue // not a variable of this matrix: absent from every row
		}
		pivot := -1
		for r := 0; r < len(working); r++ {
			if !used[r] && working[r].getCol(col) {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			independent = append(independent, edgeID)
			continue
		}
		used[pivot] = true
		pivotRowOf[edgeID] = m.rowVtx[pivot]
		pivotRowIdx[edgeID] = pivot
		for r := 0; r < len(working); r++ {
			if r != pivot && working[r].getCol(col) {
				working[r].xorInto(working[pivot])
			}
		}
	}

	satisfiable := true
	for r := 0; r < len(working); r++ {
		if !working[r].rhs() {
			continue
		}
		allZero := true
		for _, edgeID := range columnOrder {
			col, ok := m.colIndex[edgeID]
			if ok && working[r].getCol(col) {
				allZero = false
				break
			}
		}
		if allZero {
			satisfiable = false
			break
		}
	}

	rowOf := make(map[hypergraph.VertexIndex]int, len(m.rowVtx))
	for i, v := range m.rowVtx {
		rowOf[v] = i
	}

	return EchelonInfo{
		Satisfiable: satisfiable,
		PivotRowOf:  pivotRowOf,
		Independent: independent,
		columnOrder: append([]hypergraph.EdgeIndex(nil), columnOrder...),
		reduced:     working,
		colOf:       m.colIndex,
		rowOf:       rowOf,
	}
}

// GetSolution returns, when satisfiable, the subset of columnOrder's edges
// whose pivot row has RHS 1 (free/independent columns default to excluded).
func (info EchelonInfo) GetSolution() ([]hypergraph.EdgeIndex, bool) {
	if !info.Satisfiable {
		return nil, false
	}
	var sol []hypergraph.EdgeIndex
	for _, edgeID := range info.columnOrder {
		rowIdx, ok := info.PivotRowOf[edgeID]
		if !ok {
			continue
		}
		if info.reduced[info.rowOf[rowIdx]].rhs() {
			sol = append(sol, edgeID)
		}
	}
	sort.Slice(sol, func(i, j int) bool { return sol[i] < sol[j] })
	return sol, true
}

// GetJointSolutionLocalMinimum starts from GetSolution and greedily flips
// each independent column — toggling it and every dependent column whose
// pivot row depends on it — whenever that strictly reduces the weighted
// sum of the included edges, iterating full passes until a pass makes no
// change. weightOf must return the weight of any edge named
// in columnOrder.
func (info EchelonInfo) GetJointSolutionLocalMinimum(weightOf func(hypergraph.EdgeIndex) rational.Rational) ([]hypergraph.EdgeIndex, bool) {
	base, ok := info.GetSolution()
	if !ok {
		return nil, false
	}
	assign := make(map[hypergraph.EdgeIndex]bool, len(info.columnOrder))
	for _, e := range base {
		assign[e] = true
	}

	// dependentsOf[free] lists the dependent edges whose pivot row has a 1
	// in free's column post-reduction — flipping free toggles each of them.
	dependentsOf := make(map[hypergraph.EdgeIndex][]hypergraph.EdgeIndex, len(info.Independent))
	for _, free := range info.Independent {
		freeCol, ok := info.colOf[free]
		if !ok {
			continue
		}
		var deps []hypergraph.EdgeIndex
		for depEdge, rowVtx := range info.PivotRowOf {
			if info.reduced[info.rowOf[rowVtx]].getCol(freeCol) {
				deps = append(deps, depEdge)
			}
		}
		sort.Slice(deps, func(i, j int) bool { return deps[i] < deps[j] })
		dependentsOf[free] = deps
	}

	free := append([]hypergraph.EdgeIndex(nil), info.Independent...)
	sort.Slice(free, func(i, j int) bool { return free[i] < free[j] })

	changed := true
	for changed {
		changed = false
		for _, f := range free {
			delta := signedDelta(!assign[f], weightOf(f))
			for _, dep := range dependentsOf[f] {
				delta = delta.Add(signedDelta(!assign[dep], weightOf(dep)))
			}
			if delta.IsNegative() {
				assign[f] = !assign[f]
				for _, dep := range dependentsOf[f] {
					assign[dep] = !assign[dep]
				}
				changed = true
			}
		}
	}

	var out []hypergraph.EdgeIndex
	for e, included := range assign {
		if included {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, true
}

// signedDelta returns +weight if turningOn, -weight otherwise.
func signedDelta(turningOn bool, weight rational.Rational) rational.Rational {
	if turningOn {
		return weight
	}
	return weight.Neg()
}
