package paritymatrix

import "errors"

// Sentinel errors for paritymatrix. Out-of-range row/column access is a
// programmer error and panics instead; these sentinels cover the handful
// of operations that can fail on caller-shaped (not just programmer-shaped)
// input.
var (
	// ErrNoSolution names the unsatisfiable-matrix condition. GetSolution
	// and GetJointSolutionLocalMinimum report that condition through their
	// false second result and do not return this error.
	ErrNoSolution = errors.New("paritymatrix: no solution: matrix is unsatisfiable")

	// ErrUnknownEdge names a reference to an edge id that was never added
	// via AddVariable. No function in this package returns it: IsTight and
	// UpdateEdgeTightness panic on an unknown edge.
	ErrUnknownEdge = errors.New("paritymatrix: edge is not a variable of this matrix")

	// ErrUnknownVertex names a reference to a vertex id that was never added
	// via AddConstraint. No function in this package returns it.
	ErrUnknownVertex = errors.New("paritymatrix: vertex is not a constraint of this matrix")
)
