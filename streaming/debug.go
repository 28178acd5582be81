package streaming

import (
	"fmt"
	"sort"

	"github.com/vikramr2/ikcore/graphstore"
	"github.com/vikramr2/ikcore/ikc"
)

// VerifyEquivalence is the debug-mode equivalence check: it runs
// ikc.RunRegion over every vertex in the live graph, scored against the
// same total_m and min_k this engine used for its last committed update,
// and reports whether the resulting partition matches the engine's current
// clustering up to cluster ordering among equal-k_value ties. A non-nil
// error names the first mismatch found; nil means the cluster count, each
// cluster's k_value and each cluster's members match a from-scratch
// recompute. Modularity scores are not compared.
//
// This is deliberately expensive (a full decomposition and re-peel) and
// meant for tests and diagnostics, not the hot update path.
func (e *Engine) VerifyEquivalence() error {
	e.mu.RLock()
	g := e.g
	totalM := e.totalM
	minK := e.minK
	want := cloneClusters(e.clusters)
	e.mu.RUnlock()

	full := make([]graphstore.VertexID, g.NumVertices())
	for v := range full {
		full[v] = graphstore.VertexID(v)
	}

	res, err := ikc.RunRegion(g, full, totalM, ikc.WithMinK(minK))
	if err != nil {
		return fmt.Errorf("streaming: equivalence check: full recompute failed: %w", err)
	}

	got := res.Clusters
	if len(got) != len(want) {
		return fmt.Errorf("streaming: equivalence check: got %d clusters, engine has %d", len(got), len(want))
	}

	sortClustersByEmissionOrder(got)
	sortClustersByEmissionOrder(want)

	for i := range got {
		if got[i].KValue != want[i].KValue {
			return fmt.Errorf("streaming: equivalence check: cluster %d k_value %d != %d", i, want[i].KValue, got[i].KValue)
		}
		if !sameMembers(got[i].Nodes, want[i].Nodes) {
			return fmt.Errorf("streaming: equivalence check: cluster %d members differ", i)
		}
	}

	return nil
}

func sameMembers(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}

	sa := append([]uint64(nil), a...)
	sb := append([]uint64(nil), b...)
	sort.Slice(sa, func(i, j int) bool { return sa[i] < sa[j] })
	sort.Slice(sb, func(i, j int) bool { return sb[i] < sb[j] })

	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}

	return true
}
