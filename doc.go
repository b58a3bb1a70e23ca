// Package mwpf implements a hypergraph minimum-weight parity-factor (MWPF)
// decoder for quantum error correction: given a decoding hypergraph and a
// syndrome, it finds a minimum-weight edge set whose boundary matches the
// defective vertices.
//
// The core packages are organized as:
//
//	hypergraph/     — the decoding hypergraph: vertices, weighted
//	                   hyperedges, syndrome patterns, erasures
//	paritymatrix/    — GF(2) echelon-form engine used to certify invalidity
//	                   and to mine relaxers
//	invalidsubgraph/ — immutable (vertices, edges, hair) triples and their
//	                   content digests
//	relaxer/         — LP-relaxation growth directions over dual nodes
//	dualmodule/      — dual variables, their growth/shrink bookkeeping, and
//	                   the maximum-update-length computation
//	plugins/         — pluggable relaxer-discovery strategies
//	                   (union-find, single-hair)
//	primalmodule/    — the cluster manager driving the growth/conflict loop
//	solver/          — the facade tying dual + primal + plugins together
//	                   behind one Solve call
//	visualize/       — write-only JSON snapshot sink for external viewers
//
// See solver.New and solver.Solver.Solve for the primary entry point.
package mwpf
