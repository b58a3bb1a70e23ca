// Package hypergraph defines the immutable decoding hypergraph: vertices
// (parity checks), hyperedges (candidate error mechanisms, each touching one
// or more vertices and carrying a positive weight), and the current
// syndrome (which vertices are defective).
//
// An Initializer is built once per problem instance from a caller-supplied
// vertex count and edge list, then never mutated. DecodingHyperGraph wraps
// an Initializer with the mutable parts that have a lifetime shorter than
// the Initializer itself: the per-vertex defect bits (reset on
// SetSyndrome) and an optional erasure overlay (edges whose effective
// weight is forced to zero for one decode only).
package hypergraph
