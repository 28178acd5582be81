package streaming

import (
	"sort"
	"time"

	"github.com/vikramr2/ikcore/graphstore"
	"github.com/vikramr2/ikcore/ikc"
	"github.com/vikramr2/ikcore/kcore"
)

// recompute is the incremental counterpart to a full ikc.Run: affected is
// the seed set of vertices touched by mutations already applied to e.g
// (plus any brand-new vertices); edges is the new edges among those
// mutations, used only to detect a new edge crossing into or between
// clusters. It recomputes core numbers in a bounded region,
// invalidates/revalidates clusters, detects merge candidates, runs a
// localized re-emission, and records e.lastStats.
//
// Precondition: e.mu is held for writing; e.dec is non-nil (the engine is
// past InitialClustering).
func (e *Engine) recompute(edges [][2]uint64, affected map[graphstore.VertexID]struct{}, verbose bool) error {
	startAll := time.Now()

	// Rebase the modularity reference to the graph's current edge count
	// before scoring anything in this pass. Holding total_m at its
	// InitialClustering value forever makes a merge candidate's modularity
	// drift negative purely because the live graph grew edges the filter's
	// baseline never saw — e.g. two disjoint triangles bridged by one edge
	// scores e_H=7, d_H=14 against a never-updated total_m=6 and comes out
	// at q=7/6-(14/12)^2<0, silently dropping the merged cluster a fresh
	// from-scratch clustering of the same graph would keep. Rebasing here
	// keeps every cluster *this* pass emits comparable to one another
	// (they all see the same total_m), which is the property a fixed
	// reference is actually protecting.
	e.totalM = e.g.NumEdges()

	// step 3: k_floor = min pre-update core number among affected vertices
	// (a brand-new vertex contributes 0, since it has no Core entry yet).
	kFloor := -1
	for v := range affected {
		c := 0
		if int(v) < len(e.dec.Core) {
			c = int(e.dec.Core[v])
		}
		if kFloor == -1 || c < kFloor {
			kFloor = c
		}
	}
	if kFloor < 0 {
		kFloor = 0
	}

	// Grow Core for brand-new vertices; a vertex with no prior core number
	// starts at 0, same as loadDegrees would assign it on a fresh decompose.
	n := e.g.NumVertices()
	if n > len(e.dec.Core) {
		grown := make([]uint32, n)
		copy(grown, e.dec.Core)
		e.dec.Core = grown
	}

	// step 4: H = {w : C[w] >= k_floor} ∪ affected. mutate() seeds affected
	// with every InsertVertex/InsertEdge endpoint, so new vertices are
	// already included without a separate union term.
	included := make(map[graphstore.VertexID]struct{}, len(affected))
	region := make([]graphstore.VertexID, 0, len(affected))
	include := func(v graphstore.VertexID) {
		if _, ok := included[v]; !ok {
			included[v] = struct{}{}
			region = append(region, v)
		}
	}
	for v := range affected {
		include(v)
	}
	for v := 0; v < n; v++ {
		if int(e.dec.Core[v]) >= kFloor {
			include(graphstore.VertexID(v))
		}
	}

	recomputeStart := time.Now()
	view := kcore.NewSubgraphView(e.g, region)
	hDec := kcore.Decompose(view)

	affectedNodes := 0
	newMaxCore := e.dec.MaxCore
	for li, v := range region {
		nc := hDec.Core[li]
		if e.dec.Core[v] != nc {
			affectedNodes++
			e.dec.Core[v] = nc
		}
		if int(nc) > newMaxCore {
			newMaxCore = int(nc)
		}
	}
	e.dec.MaxCore = newMaxCore
	recomputeElapsed := time.Since(recomputeStart)

	// step 5: a cluster is invalidated if a member's core number dropped
	// below k_value (impossible under pure additions, kept as a defensive
	// check), restricted to clusters that actually intersect the recomputed
	// region — any cluster untouched by region can't have changed, by the
	// monotonicity property. A member's core number rising does not by
	// itself invalidate its cluster.
	touchedClusters := make(map[int]struct{})
	for _, v := range region {
		ext, ok := e.g.ToExternal(v)
		if !ok {
			continue
		}
		if idx, ok := e.clusterOf[ext]; ok {
			touchedClusters[idx] = struct{}{}
		}
	}

	invalid := make(map[int]struct{})
	for idx := range touchedClusters {
		if !e.clusterStillSound(idx) {
			invalid[idx] = struct{}{}
		}
	}

	// step 5 (external-adjacency half) and step 6 (merge candidates): a new
	// edge reaching into a cluster from an unclustered vertex invalidates
	// that cluster; a new edge spanning two distinct clusters invalidates
	// both and counts as a merge candidate.
	mergeCandidates := 0
	for _, edge := range edges {
		ci, iok := e.clusterOf[edge[0]]
		cj, jok := e.clusterOf[edge[1]]
		switch {
		case iok && jok && ci != cj:
			invalid[ci] = struct{}{}
			invalid[cj] = struct{}{}
			mergeCandidates++
		case iok && !jok:
			invalid[ci] = struct{}{}
		case jok && !iok:
			invalid[cj] = struct{}{}
		}
	}

	validCount := len(e.clusters) - len(invalid)

	// step 7: localized re-emission over invalidated clusters' members plus
	// any vertex with no current cluster whose core number now clears
	// min_k. Scored against this pass's total_m, rebased above.
	reemitSet := make(map[graphstore.VertexID]struct{})
	for idx := range invalid {
		for _, ext := range e.clusters[idx].Nodes {
			if v, ok := e.g.ToInternal(ext); ok {
				reemitSet[v] = struct{}{}
			}
		}
	}
	floor := e.minK
	if floor < 1 {
		floor = 1
	}
	for _, v := range region {
		ext, _ := e.g.ToExternal(v)
		if _, clustered := e.clusterOf[ext]; clustered {
			continue
		}
		if int(e.dec.Core[v]) >= floor {
			reemitSet[v] = struct{}{}
		}
	}

	reemitRegion := make([]graphstore.VertexID, 0, len(reemitSet))
	for v := range reemitSet {
		reemitRegion = append(reemitRegion, v)
	}

	progress := func(int) {}
	if verbose {
		progress = func(k int) { e.logger.Printf("streaming: re-emission peeling k=%d", k) }
	}

	var newClusters []ikc.Cluster
	if len(reemitRegion) > 0 {
		res, err := ikc.RunRegion(e.g, reemitRegion, e.totalM, ikc.WithMinK(e.minK), ikc.WithProgress(progress))
		if err != nil {
			return err
		}
		newClusters = res.Clusters
	}

	// Splice kept clusters with freshly emitted ones, then re-sort by
	// (k_value desc, min external id asc) to re-establish the same
	// emission order a full run would produce, without tracking which
	// slot each invalidated cluster used to occupy.
	kept := make([]ikc.Cluster, 0, validCount+len(newClusters))
	for idx, c := range e.clusters {
		if _, ok := invalid[idx]; !ok {
			kept = append(kept, c)
		}
	}
	kept = append(kept, newClusters...)
	sortClustersByEmissionOrder(kept)

	e.clusters = kept
	e.rebuildClusterOf()

	elapsed := time.Since(startAll)
	e.lastStats = Stats{
		AffectedNodes:       affectedNodes,
		InvalidatedClusters: len(invalid),
		ValidClusters:       validCount,
		MergeCandidates:     mergeCandidates,
		RecomputeTimeMs:     float64(recomputeElapsed.Microseconds()) / 1000,
		TotalTimeMs:         float64(elapsed.Microseconds()) / 1000,
	}

	if verbose {
		e.logger.Printf("streaming: recompute affected=%d invalidated=%d valid=%d merges=%d",
			affectedNodes, len(invalid), validCount, mergeCandidates)
	}

	return nil
}

// clusterStillSound reports whether every member of e.clusters[idx] still
// has a core number at least its k_value.
func (e *Engine) clusterStillSound(idx int) bool {
	c := e.clusters[idx]
	for _, ext := range c.Nodes {
		v, ok := e.g.ToInternal(ext)
		if !ok || int(e.dec.Core[v]) < c.KValue {
			return false
		}
	}

	return true
}

func sortClustersByEmissionOrder(cs []ikc.Cluster) {
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].KValue != cs[j].KValue {
			return cs[i].KValue > cs[j].KValue
		}

		return minNode(cs[i].Nodes) < minNode(cs[j].Nodes)
	})
}

func minNode(nodes []uint64) uint64 {
	min := nodes[0]
	for _, v := range nodes[1:] {
		if v < min {
			min = v
		}
	}

	return min
}
