package ikc

import (
	"fmt"
	"sort"

	"github.com/vikramr2/ikcore/graphstore"
	"github.com/vikramr2/ikcore/kcore"
)

// Run executes the iterative peeling + modularity filter driver and
// returns clusters in emission order.
//
// Complexity: each outer iteration decomposes the working graph, costing
// O(n+m') where n is the (fixed) size of its local id space and m' the
// edges not yet peeled; every iteration peels at least one vertex, so the
// whole run is O(I·(n+m)) for I outer iterations.
func Run(g *graphstore.Graph, opts ...Option) (res *Result, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	region := make([]graphstore.VertexID, g.NumVertices())
	for v := range region {
		region[v] = graphstore.VertexID(v)
	}

	return runLoop(g, newWorkGraphRegion(g, region), len(region), o.MinK, g.NumEdges(), o.Progress)
}

// RunRegion runs the same iterative peeling + modularity filter as Run, but
// restricted to region (edges leaving region are invisible to the peeler,
// via workGraph's local dense id space — decomposing and peeling costs
// O(|region| + edges among it), not O(g.NumVertices())) and scored against
// a caller-supplied total edge count rather than g's current edge count.
//
// This is what streaming.Engine's localized re-emission step needs: a
// recompute bounded to the affected region, scored against the total_m
// the engine fixed for that pass (the whole graph's edge count at the
// start of the pass), so every cluster one pass emits is scored against
// the same reference. Run(g,
// opts...) is the region==every vertex, totalM==NumEdges() special case
// of this, factored out below as runLoop.
func RunRegion(g *graphstore.Graph, region []graphstore.VertexID, totalM int, opts ...Option) (res *Result, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return runLoop(g, newWorkGraphRegion(g, region), len(region), o.MinK, totalM, o.Progress)
}

// runLoop is the shared iterative peeling body behind Run and RunRegion.
// totalUnclustered is the vertex-count denominator for Stats.UnclusteredVertices:
// len(region), which equals g.NumVertices() for Run's full-graph region.
func runLoop(g *graphstore.Graph, w *workGraph, totalUnclustered int, minK int, totalM int, progress func(int)) (*Result, error) {
	floor := minK
	if floor < 1 {
		floor = 1
	}

	var clusters []Cluster
	stats := Stats{}
	for {
		dec := kcore.Decompose(w)
		kmax := dec.MaxCore
		if kmax < floor {
			break
		}
		stats.Iterations++

		if perr := callProgress(progress, kmax); perr != nil {
			return nil, perr
		}

		components := extractComponents(w, dec, kmax)
		sort.Slice(components, func(i, j int) bool {
			return minExternal(w, components[i]) < minExternal(w, components[j])
		})

		for _, comp := range components {
			eH := internalEdgeCount(w, comp)
			dH := 0
			for _, v := range comp {
				dH += g.Degree(w.original(v))
			}
			// A candidate spanning the *entire* live graph always scores
			// exactly 0 here (e_H=m, d_H=2m by the handshake lemma), so the
			// filter admits q==0 rather than requiring it strictly positive;
			// otherwise a graph fully consumed by its first iteration could
			// never emit a cluster.
			q := modularity(eH, dH, totalM)
			if q >= 0 {
				clusters = append(clusters, Cluster{
					Nodes:      externalIDs(w, comp),
					KValue:     kmax,
					Modularity: q,
				})
				stats.ClusterCount++
				stats.ClusteredVertices += len(comp)
			}
			w.removeAll(comp) // peeled whether or not it was emitted
		}
	}
	stats.UnclusteredVertices = totalUnclustered - stats.ClusteredVertices

	return &Result{Clusters: clusters, Stats: stats}, nil
}

// modularity computes the single-community Newman modularity
// q(H) = e_H/m - (d_H/(2m))^2 for a candidate cluster H.
func modularity(eH, dH, totalM int) float64 {
	if totalM == 0 {
		return 0
	}
	m := float64(totalM)
	frac := float64(dH) / (2 * m)

	return float64(eH)/m - frac*frac
}

// extractComponents finds every connected component of
// {v : C[v] >= threshold} in w, via BFS.
func extractComponents(w *workGraph, dec *kcore.Decomposition, threshold int) [][]graphstore.VertexID {
	visited := make([]bool, w.NumVertices())
	var components [][]graphstore.VertexID
	for v := 0; v < w.NumVertices(); v++ {
		vid := graphstore.VertexID(v)
		if !w.alive[vid] || visited[vid] || int(dec.Core[vid]) < threshold {
			continue
		}
		components = append(components, bfsComponent(w, dec, threshold, vid, visited))
	}

	return components
}

func bfsComponent(w *workGraph, dec *kcore.Decomposition, threshold int, seed graphstore.VertexID, visited []bool) []graphstore.VertexID {
	queue := []graphstore.VertexID{seed}
	visited[seed] = true
	comp := make([]graphstore.VertexID, 0, 8)
	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		comp = append(comp, v)
		for u := range w.adj[v] {
			if !visited[u] && int(dec.Core[u]) >= threshold {
				visited[u] = true
				queue = append(queue, u)
			}
		}
	}

	return comp
}

func externalIDs(w *workGraph, comp []graphstore.VertexID) []uint64 {
	out := make([]uint64, len(comp))
	for i, v := range comp {
		out[i], _ = w.orig.ToExternal(w.original(v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

func minExternal(w *workGraph, comp []graphstore.VertexID) uint64 {
	min := ^uint64(0)
	for _, v := range comp {
		ext, _ := w.orig.ToExternal(w.original(v))
		if ext < min {
			min = ext
		}
	}

	return min
}

// callProgress invokes fn, converting a panic into ErrCallbackPanicked
// instead of letting it unwind through Run. Run holds no internal lock at
// this call site (it operates on a private workGraph), satisfying §5's
// "no lock held across the callback" rule trivially.
func callProgress(fn func(k int), k int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCallbackPanicked, r)
		}
	}()
	fn(k)

	return nil
}
