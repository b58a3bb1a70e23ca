package invalidsubgraph

import (
	"encoding/binary"
	"sort"

	"github.com/codahale/thyrse/hazmat/kt128"
	"github.com/mwpf-decode/mwpf/hypergraph"
	"github.com/mwpf-decode/mwpf/paritymatrix"
)

// InvalidSubgraph is an immutable pair S = (vertices, edges), plus its hair
// delta(S): the edges incident to a subgraph vertex but not themselves in
// edges. Every field is a sorted, deduplicated slice so content equality
// and hashing are order-independent.
type InvalidSubgraph struct {
	vertices []hypergraph.VertexIndex
	edges    []hypergraph.EdgeIndex
	hair     []hypergraph.EdgeIndex
	digest   uint64
}

// New builds an InvalidSubgraph from an edge set alone, deriving its vertex
// set as the union of the edges' endpoints.
func New(g *hypergraph.DecodingHyperGraph, edges []hypergraph.EdgeIndex) *InvalidSubgraph {
	seen := make(map[hypergraph.VertexIndex]struct{})
	for _, e := range edges {
		for _, v := range g.VerticesOf(e) {
			seen[v] = struct{}{}
		}
	}
	vertices := make([]hypergraph.VertexIndex, 0, len(seen))
	for v := range seen {
		vertices = append(vertices, v)
	}
	return NewComplete(g, vertices, edges)
}

// NewComplete builds an InvalidSubgraph from an explicit (vertices, edges)
// pair, deriving the hair as every edge incident to a subgraph vertex that
// is not itself in edges.
func NewComplete(g *hypergraph.DecodingHyperGraph, vertices []hypergraph.VertexIndex, edges []hypergraph.EdgeIndex) *InvalidSubgraph {
	inEdges := toSet(edges)
	hairSeen := make(map[hypergraph.EdgeIndex]struct{})
	for _, v := range vertices {
		for _, e := range g.EdgesOf(v) {
			if _, ok := inEdges[e]; !ok {
				hairSeen[e] = struct{}{}
			}
		}
	}
	hair := make([]hypergraph.EdgeIndex, 0, len(hairSeen))
	for e := range hairSeen {
		hair = append(hair, e)
	}
	return NewRaw(vertices, edges, hair)
}

// NewRaw builds an InvalidSubgraph from already-computed vertex, edge, and
// hair sets, without deriving or checking anything. Each slice is sorted and
// deduplicated in place of copies of the inputs.
func NewRaw(vertices []hypergraph.VertexIndex, edges, hair []hypergraph.EdgeIndex) *InvalidSubgraph {
	s := &InvalidSubgraph{
		vertices: sortedUnique(vertices),
		edges:    sortedUnique(edges),
		hair:     sortedUnique(hair),
	}
	s.digest = computeDigest(s.vertices, s.edges, s.hair)
	return s
}

// Vertices returns V_S in ascending order. Callers must not mutate the
// returned slice.
func (s *InvalidSubgraph) Vertices() []hypergraph.VertexIndex { return s.vertices }

// Edges returns E_S in ascending order. Callers must not mutate the
// returned slice.
func (s *InvalidSubgraph) Edges() []hypergraph.EdgeIndex { return s.edges }

// Hair returns delta(S) in ascending order. Callers must not mutate the
// returned slice.
func (s *InvalidSubgraph) Hair() []hypergraph.EdgeIndex { return s.hair }

// Digest is a stable 64-bit content hash, equal for any two InvalidSubgraph
// values built from the same vertex/edge/hair sets regardless of
// construction order. Used as the map key for dual-variable deduplication.
func (s *InvalidSubgraph) Digest() uint64 { return s.digest }

// Equal reports whether s and other have identical vertex, edge, and hair
// sets.
func (s *InvalidSubgraph) Equal(other *InvalidSubgraph) bool {
	if other == nil {
		return false
	}
	if s.digest != other.digest {
		return false
	}
	return equalSlice(s.vertices, other.vertices) &&
		equalSlice(s.edges, other.edges) &&
		equalSlice(s.hair, other.hair)
}

// SanityCheck verifies the invariants an InvalidSubgraph must hold against
// graph g: at least one vertex, every vertex and edge id in range, every
// edge a subset of the vertex set, and — the defining property — that edges
// cannot actually satisfy the parity requirement of vertices. Costly;
// callers use it only under debug builds or in tests.
func (s *InvalidSubgraph) SanityCheck(g *hypergraph.DecodingHyperGraph) error {
	if len(s.vertices) == 0 {
		return ErrEmptyVertices
	}
	vertexCount := g.VertexCount()
	for _, v := range s.vertices {
		if v >= vertexCount {
			return ErrVertexOutOfRange
		}
	}
	inVertices := toSet(s.vertices)
	for _, e := range s.edges {
		if e >= uint64(g.EdgeCount()) {
			return ErrEdgeOutOfRange
		}
		for _, v := range g.VerticesOf(e) {
			if _, ok := inVertices[v]; !ok {
				return ErrEdgeEndpointMissing
			}
		}
	}

	m := paritymatrix.New()
	for _, e := range s.edges {
		m.AddVariable(e)
	}
	columnOrder := make([]hypergraph.EdgeIndex, len(s.edges))
	copy(columnOrder, s.edges)
	for _, v := range s.vertices {
		m.AddConstraint(v, g.EdgesOf(v), g.IsDefect(v))
	}
	info := m.RowEchelonForm(columnOrder)
	if info.Satisfiable {
		return ErrActuallyValid
	}
	return nil
}

// GenerateMatrix builds the parity matrix used to search S's relaxers: one
// column per hair edge, one row per subgraph vertex.
func (s *InvalidSubgraph) GenerateMatrix(g *hypergraph.DecodingHyperGraph) *paritymatrix.Matrix {
	m := paritymatrix.New()
	for _, e := range s.hair {
		m.AddVariable(e)
	}
	for _, v := range s.vertices {
		m.AddConstraint(v, g.EdgesOf(v), g.IsDefect(v))
	}
	return m
}

func toSet(xs []uint64) map[uint64]struct{} {
	out := make(map[uint64]struct{}, len(xs))
	for _, x := range xs {
		out[x] = struct{}{}
	}
	return out
}

func sortedUnique(xs []uint64) []hypergraph.VertexIndex {
	seen := toSet(xs)
	out := make([]uint64, 0, len(seen))
	for x := range seen {
		out = append(out, x)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func equalSlice(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// computeDigest folds the three sorted id slices through a KT128 extendable
// output hash, truncated to 64 bits. KT128's tree mode is overkill for the
// handful of bytes a typical invalid subgraph contributes, but it's the
// keyed/extendable hash already in reach, and its speed on small inputs
// keeps the per-subgraph cost negligible next to the echelon work above.
func computeDigest(vertices, edges, hair []uint64) uint64 {
	h := kt128.New()
	var buf [8]byte
	write := func(xs []uint64) {
		for _, x := range xs {
			binary.LittleEndian.PutUint64(buf[:], x)
			_, _ = h.Write(buf[:])
		}
		binary.LittleEndian.PutUint64(buf[:], ^uint64(0)) // separator
		_, _ = h.Write(buf[:])
	}
	write(vertices)
	write(edges)
	write(hair)
	var out [8]byte
	_, _ = h.Read(out[:])
	return binary.LittleEndian.Uint64(out[:])
}
