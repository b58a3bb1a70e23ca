package hypergraph

import (
	"fmt"

	"github.com/mwpf-decode/mwpf/rational"
)

// DecodingHyperGraph is the immutable-structure view over an Initializer
// plus the mutable parts whose lifetime is one syndrome: defect flags and
// the erasure overlay. Structure (vertex/edge counts,
// adjacency) never changes after New; only SetSyndrome mutates state, and
// it always replaces the whole defect/erasure state atomically.
type DecodingHyperGraph struct {
	init *Initializer

	// adjacency[v] lists the indices of edges incident to vertex v, built
	// once at construction (mirrors core.Graph's adjacency-list shape).
	adjacency [][]EdgeIndex

	isDefect []bool
	erased   []bool
}

// New validates init and builds the adjacency index. Returns a UserInput
// error (see errors.go) if init is malformed.
func New(init *Initializer) (*DecodingHyperGraph, error) {
	if err := init.Validate(); err != nil {
		return nil, err
	}
	adjacency := make([][]EdgeIndex, init.VertexCount)
	for edgeIdx, e := range init.Edges {
		seen := make(map[VertexIndex]bool, len(e.Endpoints))
		for _, v := range e.Endpoints {
			if seen[v] {
				continue // a hyperedge touches a vertex at most once in adjacency
			}
			seen[v] = true
			adjacency[v] = append(adjacency[v], EdgeIndex(edgeIdx))
		}
	}
	return &DecodingHyperGraph{
		init:      init,
		adjacency: adjacency,
		isDefect:  make([]bool, init.VertexCount),
		erased:    make([]bool, len(init.Edges)),
	}, nil
}

// VertexCount returns the number of vertices.
func (g *DecodingHyperGraph) VertexCount() uint64 { return g.init.VertexCount }

// EdgeCount returns the number of hyperedges.
func (g *DecodingHyperGraph) EdgeCount() int { return len(g.init.Edges) }

// EdgesOf returns the (shared, do-not-mutate) list of edges incident to v.
func (g *DecodingHyperGraph) EdgesOf(v VertexIndex) []EdgeIndex {
	g.mustVertex(v)
	return g.adjacency[v]
}

// VerticesOf returns the endpoints of edge e.
func (g *DecodingHyperGraph) VerticesOf(e EdgeIndex) []VertexIndex {
	g.mustEdge(e)
	return g.init.Edges[e].Endpoints
}

// IsDefect reports the current defect flag for vertex v.
func (g *DecodingHyperGraph) IsDefect(v VertexIndex) bool {
	g.mustVertex(v)
	return g.isDefect[v]
}

// WeightOf returns the effective weight of edge e: its declared weight,
// or zero if e is currently erased.
func (g *DecodingHyperGraph) WeightOf(e EdgeIndex) rational.Rational {
	g.mustEdge(e)
	if g.erased[e] {
		return rational.Zero()
	}
	return g.init.Edges[e].Weight
}

// IsErased reports whether e's weight is currently forced to zero.
func (g *DecodingHyperGraph) IsErased(e EdgeIndex) bool {
	g.mustEdge(e)
	return g.erased[e]
}

// SetSyndrome replaces the defect flags and erasure overlay with the given
// pattern, validating every referenced id is in range. Any previously set
// defect/erasure state is cleared first before the new pattern is applied.
func (g *DecodingHyperGraph) SetSyndrome(pattern SyndromePattern) error {
	for _, v := range pattern.DefectVertices {
		if v >= g.init.VertexCount {
			return fmt.Errorf("hypergraph: defect vertex %d: %w", v, ErrVertexOutOfRange)
		}
	}
	for _, e := range pattern.Erasures {
		if e >= uint64(len(g.init.Edges)) {
			return fmt.Errorf("hypergraph: erasure edge %d: %w", e, ErrEdgeOutOfRange)
		}
	}
	for i := range g.isDefect {
		g.isDefect[i] = false
	}
	for i := range g.erased {
		g.erased[i] = false
	}
	for _, v := range pattern.DefectVertices {
		g.isDefect[v] = !g.isDefect[v] // repeated entries toggle, matching XOR-parity semantics
	}
	for _, e := range pattern.Erasures {
		g.erased[e] = true
	}
	return nil
}

// Clear drops the defect/erasure state, equivalent to SetSyndrome with an
// empty pattern.
func (g *DecodingHyperGraph) Clear() {
	_ = g.SetSyndrome(SyndromePattern{})
}

func (g *DecodingHyperGraph) mustVertex(v VertexIndex) {
	if v >= g.init.VertexCount {
		panic(fmt.Sprintf("hypergraph: vertex %d out of range [0,%d)", v, g.init.VertexCount))
	}
}

func (g *DecodingHyperGraph) mustEdge(e EdgeIndex) {
	if e >= uint64(len(g.init.Edges)) {
		panic(fmt.Sprintf("hypergraph: edge %d out of range [0,%d)", e, len(g.init.Edges)))
	}
}
