package ikc

import "github.com/vikramr2/ikcore/graphstore"

// workGraph is an ephemeral, peelable copy of a region of a
// graphstore.Graph's adjacency, private to one Run/RunRegion call.
// graphstore.Graph deliberately offers no deletion; the IKC driver's
// "remove all vertices in S from G_current" step needs exactly that, so
// it keeps its own throwaway copy instead of asking the store to support
// it.
//
// workGraph uses a dense *local* id space [0, len(region)) rather than
// the graphstore's own ids, so that decomposing and peeling a small
// region costs O(|region| + edges among it), not O(g.NumVertices()).
// localToOrig translates back; vertices outside the region are simply
// absent from it; a region member with no region-internal neighbors
// reports degree 0, same as a fully peeled one, and is harmlessly
// ignored by later iterations.
type workGraph struct {
	orig        *graphstore.Graph
	alive       []bool
	adj         []map[graphstore.VertexID]struct{} // neighbor sets, in local ids
	localToOrig []graphstore.VertexID
}

// newWorkGraphRegion builds a workGraph over exactly region's vertices.
// Run passes the full id range [0, g.NumVertices()) here, for which the
// local and graphstore id spaces coincide; RunRegion passes a proper
// subset to bound the decomposer to an affected region.
func newWorkGraphRegion(g *graphstore.Graph, region []graphstore.VertexID) *workGraph {
	n := len(region)
	idx := make(map[graphstore.VertexID]int, n)
	for i, v := range region {
		idx[v] = i
	}
	w := &workGraph{
		orig:        g,
		alive:       make([]bool, n),
		adj:         make([]map[graphstore.VertexID]struct{}, n),
		localToOrig: append([]graphstore.VertexID(nil), region...),
	}
	for i, v := range region {
		w.alive[i] = true
		nbrs := g.Neighbors(v)
		set := make(map[graphstore.VertexID]struct{}, len(nbrs))
		for _, u := range nbrs {
			if li, ok := idx[u]; ok {
				set[graphstore.VertexID(li)] = struct{}{}
			}
		}
		w.adj[i] = set
	}

	return w
}

// original maps a local id back to its graphstore.VertexID.
func (w *workGraph) original(v graphstore.VertexID) graphstore.VertexID {
	return w.localToOrig[v]
}

// NumVertices satisfies kcore.Graph: the local id space never shrinks,
// only the per-vertex adjacency does.
func (w *workGraph) NumVertices() int { return len(w.alive) }

// Degree satisfies kcore.Graph.
func (w *workGraph) Degree(v graphstore.VertexID) int {
	if !w.alive[v] {
		return 0
	}

	return len(w.adj[v])
}

// Neighbors satisfies kcore.Graph. Returned ids are local.
func (w *workGraph) Neighbors(v graphstore.VertexID) []graphstore.VertexID {
	if !w.alive[v] {
		return nil
	}
	out := make([]graphstore.VertexID, 0, len(w.adj[v]))
	for u := range w.adj[v] {
		out = append(out, u)
	}

	return out
}

// removeAll deletes every (local-id) vertex in comp and its incident edges.
func (w *workGraph) removeAll(comp []graphstore.VertexID) {
	for _, v := range comp {
		for u := range w.adj[v] {
			delete(w.adj[u], v)
		}
		w.adj[v] = nil
		w.alive[v] = false
	}
}

// internalEdgeCount counts edges with both endpoints in comp (e_H), using
// current adjacency — equal to the original-graph count for any pair that
// has not yet been peeled, since workGraph only ever removes edges.
func internalEdgeCount(w *workGraph, comp []graphstore.VertexID) int {
	inComp := make(map[graphstore.VertexID]struct{}, len(comp))
	for _, v := range comp {
		inComp[v] = struct{}{}
	}
	count := 0
	for _, v := range comp {
		for u := range w.adj[v] {
			if _, ok := inComp[u]; ok {
				count++
			}
		}
	}

	return count / 2
}
