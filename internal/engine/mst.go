package engine

import "sort"

// ─── Minimum Spanning Tree ──────────────────────────────────
//
// Kruskal's algorithm over the complete candidate graph. The candidate
// graph is always connected, so the result has exactly n-1 edges and
// no failure path exists beyond the precondition checks in graph.go.
//
// Tie-break: candidates arrive in ascending (a, b) index order and the
// sort is stable, so equal-length edges are taken in index order. This
// keeps output deterministic on degenerate (equal-distance) inputs.
//
// Complexity: O(n² log n) for sorting n²/2 candidate edges; union-find
// operations are effectively O(α(n)).

// minimumSpanningTree returns the minimum-total-length spanning tree of
// the candidate graph over n nodes, in the order edges were accepted.
func minimumSpanningTree(n int, candidates []candidateEdge) []candidateEdge {
	sorted := make([]candidateEdge, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].lengthM < sorted[j].lengthM
	})

	uf := newUnionFind(n)
	tree := make([]candidateEdge, 0, n-1)
	for _, e := range sorted {
		if uf.union(e.a, e.b) {
			tree = append(tree, e)
			if len(tree) == n-1 {
				break
			}
		}
	}
	return tree
}

// ─── Union-Find ─────────────────────────────────────────────

// unionFind is a disjoint-set forest with path compression and union
// by rank.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // path halving
		x = uf.parent[x]
	}
	return x
}

// union merges the sets containing a and b. Returns false if they were
// already in the same set (adding the edge would create a cycle).
func (uf *unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
	return true
}
