package hypergraph

import "errors"

// Sentinel errors for hypergraph construction. All are UserInput
// errors: the caller gets a typed error back, nothing panics.
var (
	// ErrEmptyEdge indicates an edge was declared with zero endpoints.
	ErrEmptyEdge = errors.New("hypergraph: edge has no endpoints")

	// ErrVertexOutOfRange indicates an edge or syndrome entry referenced a
	// vertex id >= the declared vertex count.
	ErrVertexOutOfRange = errors.New("hypergraph: vertex id out of range")

	// ErrEdgeOutOfRange indicates an erasure or lookup referenced an edge id
	// that does not exist.
	ErrEdgeOutOfRange = errors.New("hypergraph: edge id out of range")

	// ErrNegativeWeight indicates an edge was declared with a non-positive
	// weight.
	ErrNegativeWeight = errors.New("hypergraph: edge weight must be positive")
)
