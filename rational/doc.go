// Package rational provides the Rational scalar used throughout the decoder
// for dual variables, grow rates, edge slacks, and edge weights.
//
// Two builds are available, selected by a Go build tag:
//
//   - exact (default, no build tag): backed by math/big.Rat, arbitrary
//     precision, never loses a comparison to rounding.
//   - float (build tag "mwpf_float"): backed by float64, with an
//     EPSILON-tolerant equality so that values within DefaultEpsilon of one
//     another compare equal. Ties within EPSILON collapse, matching the
//     decoder's documented tolerance for floating dual arithmetic.
//
// Both builds expose the identical Rational API: Zero, One, Add, Sub, Mul,
// Div, Neg, Cmp, IsZero, IsNegative, Sign, and String. Callers never need to
// know which build is active.
package rational
