// Package plugins implements the relaxer-finding strategies a cluster asks
// for when its own tight edges cannot satisfy its vertices: given the
// cluster's current state (tight edges, hair, positive dual nodes),
// propose zero or more relaxer.Relaxer directions to move dual variables
// along.
//
// Two strategies are provided. UnionFind is the cheap fallback that always
// terminates: it grows the whole unsatisfiable cluster as a single invalid
// subgraph. SingleHair searches for a cheaper, more targeted move — a
// positive dual node whose hair edges reduce, under echelon elimination, to
// exactly one that would resolve the cluster — in Once (a single scan) or
// Multiple (repeated scans up to a repetition cap) form.
package plugins
