// Package paritymatrix implements the dense-in-bitset GF(2) parity matrix
// A·x = b shared by every subsystem of the decoder: columns are edge
// variables, rows are vertex parity constraints, and a reduced-row-echelon
// engine certifies satisfiability and extracts solutions.
//
// Row storage follows the layout this package mandates: each row is a
// slice of uint64 words; bit position 0 (the most significant bit of word
// 0) holds the right-hand-side parity bit, and bit positions 1..n, packed
// from the high end down, hold the left-hand-side coefficients for columns
// 0..n-1. XOR between rows is word-wise; growing a column only appends a
// new zero word to every row when the new variable's bit position crosses
// a 64-bit boundary.
//
// Echelon computation, solution extraction, and the joint local-minimum
// search are implemented over a *working copy* of the rows so the stored
// matrix is never mutated by a read-only query; only AddVariable,
// AddConstraint, and UpdateEdgeTightness mutate the matrix itself.
package paritymatrix
