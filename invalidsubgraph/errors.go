package invalidsubgraph

import "errors"

// Sentinel errors for invalidsubgraph construction and sanity checking.
var (
	// ErrEmptyVertices indicates an InvalidSubgraph was built with no
	// vertices at all.
	ErrEmptyVertices = errors.New("invalidsubgraph: must contain at least one vertex")

	// ErrVertexOutOfRange indicates a vertex referenced by this subgraph is
	// not a vertex of the graph it was checked against.
	ErrVertexOutOfRange = errors.New("invalidsubgraph: vertex not in graph")

	// ErrEdgeOutOfRange indicates an edge referenced by this subgraph is not
	// an edge of the graph it was checked against.
	ErrEdgeOutOfRange = errors.New("invalidsubgraph: edge not in graph")

	// ErrEdgeEndpointMissing indicates one of an included edge's endpoints
	// is not in the subgraph's vertex set, breaking the (V_S, E_S) closure
	// requirement.
	ErrEdgeEndpointMissing = errors.New("invalidsubgraph: edge endpoint missing from vertex set")

	// ErrActuallyValid indicates the edge set can, in fact, satisfy the
	// parity requirement of the vertex set — this is not an invalid
	// subgraph at all.
	ErrActuallyValid = errors.New("invalidsubgraph: edge set satisfies vertex parity requirement")
)
