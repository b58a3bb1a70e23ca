package solver

import "errors"

// Sentinel errors for solver configuration.
var (
	// ErrUnknownPlugin indicates a PluginList entry named an identifier
	// this package does not recognize.
	ErrUnknownPlugin = errors.New("solver: unrecognized plugin identifier")
)
