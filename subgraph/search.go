package subgraph

import (
	"sort"

	"github.com/vikramr2/ikcore/graphstore"
	"github.com/vikramr2/ikcore/kcore"
)

// resolve returns dec unchanged if non-nil, otherwise decomposes g.
func resolve(g *graphstore.Graph, dec *kcore.Decomposition) *kcore.Decomposition {
	if dec != nil {
		return dec
	}

	return kcore.Decompose(g)
}

// walker carries the mutable BFS state for one component extraction,
// mirroring this module's convention (see kcore.decomposer) of boxing a
// traversal's working slices in a small unexported struct.
type walker struct {
	g         *graphstore.Graph
	core      []uint32
	threshold int
	visited   []bool
}

// component runs BFS from seed over {v : core[v] >= threshold}, marking
// visited as it goes, and returns the member internal ids.
func (w *walker) component(seed graphstore.VertexID) []graphstore.VertexID {
	if w.visited[seed] {
		return nil
	}
	queue := []graphstore.VertexID{seed}
	w.visited[seed] = true
	comp := make([]graphstore.VertexID, 0, 8)
	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		comp = append(comp, v)
		for _, u := range w.g.Neighbors(v) {
			if w.visited[u] || int(w.core[u]) < w.threshold {
				continue
			}
			w.visited[u] = true
			queue = append(queue, u)
		}
	}

	return comp
}

// toResult converts internal ids into a Result with external ids sorted
// ascending, giving callers a deterministic Nodes ordering.
func toResult(g *graphstore.Graph, k int, comp []graphstore.VertexID) *Result {
	nodes := make([]uint64, len(comp))
	for i, v := range comp {
		ext, _ := g.ToExternal(v)
		nodes[i] = ext
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })

	return &Result{K: k, Nodes: nodes, Size: len(nodes)}
}

// Maximal returns the connected component of q in the subgraph induced by
// {v : C[v] >= C[q]} — the largest k-core containing q. ok is false if q
// is not a known external id.
//
// Complexity: O(n+m), plus decomposition cost if dec is nil.
func Maximal(g *graphstore.Graph, qExt uint64, dec *kcore.Decomposition) (res *Result, used *kcore.Decomposition, ok bool) {
	used = resolve(g, dec)
	q, known := g.ToInternal(qExt)
	if !known {
		return nil, used, false
	}

	threshold := int(used.Core[q])
	w := &walker{g: g, core: used.Core, threshold: threshold, visited: make([]bool, g.NumVertices())}
	comp := w.component(q)

	return toResult(g, threshold, comp), used, true
}

// Minimum returns the smallest-by-cardinality connected component of
// {v : C[v] >= k}, ties broken by the smallest minimum external id among
// candidate components. Returns a zero-size Result if no such component
// exists.
//
// Complexity: O(n+m), plus decomposition cost if dec is nil.
func Minimum(g *graphstore.Graph, k int, dec *kcore.Decomposition) (res *Result, used *kcore.Decomposition) {
	used = resolve(g, dec)
	n := g.NumVertices()
	w := &walker{g: g, core: used.Core, threshold: k, visited: make([]bool, n)}

	var best []graphstore.VertexID
	var bestMinExt uint64
	haveBest := false
	for v := 0; v < n; v++ {
		vid := graphstore.VertexID(v)
		if w.visited[vid] || int(used.Core[vid]) < k {
			continue
		}
		comp := w.component(vid)
		minExt := minExternal(g, comp)
		switch {
		case !haveBest:
			best, bestMinExt, haveBest = comp, minExt, true
		case len(comp) < len(best):
			best, bestMinExt = comp, minExt
		case len(comp) == len(best) && minExt < bestMinExt:
			best, bestMinExt = comp, minExt
		}
	}

	return toResult(g, k, best), used
}

// MinimumContaining returns the connected component of q within
// {v : C[v] >= k}; empty if C[q] < k. ok is false only if q is unknown.
//
// Complexity: O(n+m), plus decomposition cost if dec is nil.
func MinimumContaining(g *graphstore.Graph, qExt uint64, k int, dec *kcore.Decomposition) (res *Result, used *kcore.Decomposition, ok bool) {
	used = resolve(g, dec)
	q, known := g.ToInternal(qExt)
	if !known {
		return nil, used, false
	}
	if int(used.Core[q]) < k {
		return &Result{K: k}, used, true
	}

	w := &walker{g: g, core: used.Core, threshold: k, visited: make([]bool, g.NumVertices())}
	comp := w.component(q)

	return toResult(g, k, comp), used, true
}

func minExternal(g *graphstore.Graph, comp []graphstore.VertexID) uint64 {
	min := ^uint64(0)
	for _, v := range comp {
		ext, _ := g.ToExternal(v)
		if ext < min {
			min = ext
		}
	}

	return min
}
