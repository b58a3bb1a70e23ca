package plugins

import "errors"

// ErrEmptyCluster is returned when a plugin is asked to search a cluster
// with no vertices at all.
var ErrEmptyCluster = errors.New("plugins: cluster has no vertices")
