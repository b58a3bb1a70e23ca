package primalmodule

import "github.com/mwpf-decode/mwpf/hypergraph"

// vertexDSU is a disjoint-set over vertex ids, adapted from
// prim_kruskal.Kruskal's path-compression-plus-union-by-rank disjoint set —
// keyed here by vertex id rather than a generic string label, since a
// cluster's canonical identity is the component of vertices its tight
// edges have pulled together.
type vertexDSU struct {
	parent map[hypergraph.VertexIndex]hypergraph.VertexIndex
	rank   map[hypergraph.VertexIndex]int
}

func newVertexDSU() *vertexDSU {
	return &vertexDSU{
		parent: make(map[hypergraph.VertexIndex]hypergraph.VertexIndex),
		rank:   make(map[hypergraph.VertexIndex]int),
	}
}

// find returns v's current root, registering v as a fresh singleton set the
// first time it is seen.
func (d *vertexDSU) find(v hypergraph.VertexIndex) hypergraph.VertexIndex {
	if _, ok := d.parent[v]; !ok {
		d.parent[v] = v
		d.rank[v] = 0
		return v
	}
	for d.parent[v] != v {
		d.parent[v] = d.parent[d.parent[v]]
		v = d.parent[v]
	}
	return v
}

// union merges a's and b's sets, returning the surviving root, the absorbed
// root (valid only when changed is true), and whether a merge actually
// happened.
func (d *vertexDSU) union(a, b hypergraph.VertexIndex) (winner, loser hypergraph.VertexIndex, changed bool) {
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return ra, rb, false
	}
	if d.rank[ra] < d.rank[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	if d.rank[ra] == d.rank[rb] {
		d.rank[ra]++
	}
	return ra, rb, true
}
