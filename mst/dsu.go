// SPDX-License-Identifier: MIT
// Package: eegmst/mst
//
// dsu.go — union-find over vertex IDs for Kruskal and tree validation.

package mst

// disjointSet is a union-find over string IDs with path compression and union by rank.
type disjointSet struct {
	parent map[string]string
	rank   map[string]int
}

func newDisjointSet(ids []string) *disjointSet {
	d := &disjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.parent[id] = id
	}

	return d
}

// find walks to the root iteratively, halving the path as it goes.
func (d *disjointSet) find(u string) string {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v; it reports false when they were already joined.
func (d *disjointSet) union(u, v string) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}
