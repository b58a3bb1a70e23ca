// Package primalmodule is the cluster manager: it owns the growth/conflict
// main loop described for the primal side of the decoder, merging vertices
// into clusters as edges between them go tight, invoking plugins to keep
// each cluster's dual nodes moving, and finally extracting a primal
// subgraph once every cluster is internally satisfiable.
package primalmodule
