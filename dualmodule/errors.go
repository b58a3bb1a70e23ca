package dualmodule

import "errors"

// Sentinel errors for dualmodule.
var (
	// ErrNegativeGrowth is the panic message Grow uses when asked to advance
	// by a negative step; growth always moves time forward, never backward.
	ErrNegativeGrowth = errors.New("dualmodule: grow step must be nonnegative")

	// ErrUnknownNode indicates an operation referenced a DualNode this
	// module did not create.
	ErrUnknownNode = errors.New("dualmodule: dual node does not belong to this module")
)
