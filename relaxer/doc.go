// Package relaxer defines Relaxer, the signed direction a plugin proposes
// for moving dual variables: a linear combination of invalid subgraphs
// (grow some, shrink others) together with the net effect that direction
// has on every edge it currently untightens.
//
// A Relaxer only ever describes an intent — applying it is the primal
// module's job. Before application it is checked twice: SanityCheck
// verifies internal consistency (nonzero rates, and a growing-edge summary
// that matches the direction with nonnegative net untightening), and
// ValidateAgainst checks it against current decoder state (no growing of
// an already-tight edge, no shrinking of a dual node that is at zero).
package relaxer
