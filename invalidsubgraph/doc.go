// Package invalidsubgraph defines InvalidSubgraph, the immutable value type
// a dual variable grows on: a pair (vertices, edges) that cannot by itself
// satisfy the parity requirement of its vertices, together with its hair
// (the edges touching a subgraph vertex but not included in the subgraph).
//
// Two InvalidSubgraph values with the same vertex/edge/hair sets are equal
// and hash identically, so cluster and plugin code can deduplicate dual
// variables by content rather than by pointer identity.
package invalidsubgraph
