package ikc

import "github.com/vikramr2/ikcore/graphstore"

// DefaultMinK is the zero-value floor for the iterative peeling loop: peel
// until the graph is exhausted.
const DefaultMinK = 0

// Options configures Run.
type Options struct {
	// MinK halts peeling once the current max k-core falls below
	// max(MinK, 1); clusters with KValue < MinK are never emitted.
	MinK int

	// Progress, if non-nil, is invoked once per outer iteration with the
	// iteration's k_max, in non-increasing order. Never called while Run
	// holds any internal lock (Run holds none; it operates on an ephemeral
	// working copy of the graph private to this call).
	Progress func(k int)
}

// Option configures a Run call.
type Option func(*Options)

// WithMinK sets the peeling floor.
func WithMinK(k int) Option {
	return func(o *Options) { o.MinK = k }
}

// WithProgress registers a progress callback. A nil fn is ignored.
func WithProgress(fn func(k int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

func defaultOptions() Options {
	return Options{MinK: DefaultMinK, Progress: func(int) {}}
}

// Cluster is a single emitted community: its member external vertex ids
// (ascending), the k-core level it was peeled at, and its single-cluster
// modularity score.
type Cluster struct {
	Nodes      []uint64
	KValue     int
	Modularity float64
}

// Stats summarizes one Run: how many vertices ended up in an emitted
// cluster vs. not (discarded by the modularity filter or never peeled at
// all), how many clusters were emitted, and how many outer peeling
// iterations ran.
type Stats struct {
	ClusteredVertices   int
	UnclusteredVertices int
	ClusterCount        int
	Iterations          int
}

// Result is the ordered output of Run: Clusters in emission order
// (non-increasing KValue; ties broken by ascending minimum external id),
// plus run statistics.
type Result struct {
	Clusters []Cluster
	Stats    Stats
}

// VertexID re-exports graphstore.VertexID for package-external callers
// that only need to name the id type.
type VertexID = graphstore.VertexID
