// internal/engine/blossom.go
// Edmonds' blossom algorithm: extends a seed matching to a maximum matching
// on a general (non-bipartite) graph by repeatedly finding augmenting paths,
// contracting odd cycles ("blossoms") discovered along the way.

package engine

// Blossom extends seed (which may be empty, via NewMatching()) to a maximum
// matching of g. seed's edges must already be edges of g. The returned
// Matching is new; seed is not mutated.
func Blossom(g *Graph, seed *Matching) *Matching {
	nodes := g.Nodes
	n := len(nodes)
	index := make(map[*Node]int, n)
	for i, v := range nodes {
		index[v] = i
	}

	match := make([]int, n)
	for i := range match {
		match[i] = -1
	}
	if seed != nil {
		for _, e := range seed.Pairs() {
			ai, bi := index[e.A()], index[e.B()]
			match[ai], match[bi] = bi, ai
		}
	}

	adj := make([][]int, n)
	for i, v := range nodes {
		neighbors := v.Neighbors()
		row := make([]int, 0, len(neighbors))
		for u := range neighbors {
			row = append(row, index[u])
		}
		adj[i] = row
	}

	b := &blossomSolver{n: n, adj: adj}
	for v := 0; v < n; v++ {
		if match[v] == -1 {
			if u := b.findAugmentingPath(v, match); u != -1 {
				b.augment(u, match)
			}
		}
	}

	out := NewMatching()
	done := make([]bool, n)
	for v, u := range match {
		if u == -1 || done[v] || done[u] {
			continue
		}
		done[v], done[u] = true, true
		out.Insert(nodes[v], nodes[u])
	}
	return out
}

// blossomSolver holds the scratch state for one run of the augmenting-path
// search, reused across the outer loop's calls.
type blossomSolver struct {
	n    int
	adj  [][]int
	used []bool
	p    []int
	base []int
}

// augment flips match status along the augmenting path ending at u,
// discovered by findAugmentingPath via the parent array b.p.
func (b *blossomSolver) augment(u int, match []int) {
	for u != -1 {
		pv := b.p[u]
		ppv := match[pv]
		match[u] = pv
		match[pv] = u
		u = ppv
	}
}

// lca finds the lowest common ancestor of a and b in the forest built by the
// current BFS, walking both up via base/match/parent pointers.
func (b *blossomSolver) lca(a, bb int, match []int) int {
	visited := make([]bool, b.n)
	x := a
	for {
		x = b.base[x]
		visited[x] = true
		if match[x] == -1 {
			break
		}
		x = b.p[match[x]]
	}
	y := bb
	for {
		y = b.base[y]
		if visited[y] {
			return y
		}
		y = b.p[match[y]]
	}
}

// markPath walks from v up to the blossom base, marking every base visited
// so the caller can contract them, and rewires parent pointers so the
// blossom remains traversable after contraction.
func (b *blossomSolver) markPath(v, blossomBase, child int, match []int, inBlossom []bool) {
	for b.base[v] != blossomBase {
		inBlossom[b.base[v]] = true
		inBlossom[b.base[match[v]]] = true
		b.p[v] = child
		child = match[v]
		v = b.p[match[v]]
	}
}

// findAugmentingPath runs a BFS from root, contracting blossoms as they're
// discovered, and returns the free vertex at the far end of an augmenting
// path (with b.p holding the path back to root), or -1 if root's component
// has no augmenting path.
func (b *blossomSolver) findAugmentingPath(root int, match []int) int {
	b.used = make([]bool, b.n)
	b.p = make([]int, b.n)
	b.base = make([]int, b.n)
	for i := 0; i < b.n; i++ {
		b.p[i] = -1
		b.base[i] = i
	}
	b.used[root] = true

	queue := []int{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]

		for _, to := range b.adj[v] {
			if b.base[v] == b.base[to] || match[v] == to {
				continue
			}
			if to == root || (match[to] != -1 && b.p[match[to]] != -1) {
				curBase := b.lca(v, to, match)
				inBlossom := make([]bool, b.n)
				b.markPath(v, curBase, to, match, inBlossom)
				b.markPath(to, curBase, v, match, inBlossom)
				for i := 0; i < b.n; i++ {
					if inBlossom[b.base[i]] {
						b.base[i] = curBase
						if !b.used[i] {
							b.used[i] = true
							queue = append(queue, i)
						}
					}
				}
			} else if b.p[to] == -1 {
				b.p[to] = v
				if match[to] == -1 {
					return to
				}
				b.used[match[to]] = true
				queue = append(queue, match[to])
			}
		}
	}
	return -1
}
