// Package solver is the facade: it wires a hypergraph, a dual module, and a
// primal module together behind one entry point, accepts a plugin list and
// a config, and runs the decode loop to completion or timeout.
package solver
