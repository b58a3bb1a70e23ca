package hypergraph

import (
	"fmt"

	"github.com/mwpf-decode/mwpf/rational"
)

// VertexIndex identifies a vertex by position in the Initializer's implicit
// vertex list.
type VertexIndex = uint64

// EdgeIndex identifies a hyperedge by position in Initializer.Edges.
type EdgeIndex = uint64

// EdgeDef is one hyperedge as supplied by the caller: an ordered list of
// vertex endpoints and a positive weight. An edge may touch any number >= 1
// of vertices.
type EdgeDef struct {
	Endpoints []VertexIndex
	Weight    rational.Rational
}

// Initializer is the immutable pair (vertex count, edge list) shared
// read-only by every subsystem of one solver instance.
type Initializer struct {
	VertexCount uint64
	Edges       []EdgeDef
}

// Validate checks the structural invariants that count as UserInput
// errors: every edge has at least one endpoint, every endpoint is
// in range, and every weight is strictly positive.
func (init *Initializer) Validate() error {
	for i, e := range init.Edges {
		if len(e.Endpoints) == 0 {
			return fmt.Errorf("hypergraph: edge %d: %w", i, ErrEmptyEdge)
		}
		if !e.Weight.IsPositive() {
			return fmt.Errorf("hypergraph: edge %d: %w", i, ErrNegativeWeight)
		}
		for _, v := range e.Endpoints {
			if v >= init.VertexCount {
				return fmt.Errorf("hypergraph: edge %d endpoint %d: %w", i, v, ErrVertexOutOfRange)
			}
		}
	}
	return nil
}

// SyndromePattern names the defective vertices for one decode, plus any
// edges whose weight should be forced to zero for this decode only
// (erasures).
type SyndromePattern struct {
	DefectVertices []VertexIndex
	Erasures       []EdgeIndex
}
