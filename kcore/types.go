package kcore

import "github.com/vikramr2/ikcore/graphstore"

// Graph is the adjacency view Decompose needs: a dense vertex id range
// [0, NumVertices()) plus per-vertex degree and neighbor lookups. Both
// graphstore.Graph and ikc's internal peelable working copy satisfy it,
// so Decompose never depends on graphstore directly — it accepts the
// interface its algorithm actually needs, per this module's "accept
// interfaces, return structs" convention.
type Graph interface {
	NumVertices() int
	Degree(v VertexID) int
	Neighbors(v VertexID) []VertexID
}

// Decomposition is the immutable output of Decompose: a core number per
// internal vertex id plus the graph-wide maximum core. Decompose never
// touches it after returning it; callers may cache it and pass it back
// into subgraph.Maximal, Minimum or MinimumContaining for reuse.
// streaming.Engine updates the one it owns in place across recomputes.
type Decomposition struct {
	// Core[v] is the core number of internal id v.
	Core []uint32

	// MaxCore is max(Core), or 0 for an empty graph.
	MaxCore int
}

// Options configures Decompose.
type Options struct {
	// Progress, if non-nil, is invoked during peeling with a monotone
	// non-increasing sequence of remaining-core-headroom values. It is
	// advisory: Decompose never requires it to be called, and implementations
	// may call it zero or more times (bounded by O(MaxCore)). Decompose never
	// holds an internal lock while calling Progress, and a panicking Progress
	// aborts the call — see Decompose's doc for the exact recovery contract.
	Progress func(k int)
}

// Option configures a Decompose call.
type Option func(*Options)

// WithProgress registers a progress callback. A nil fn is ignored (matches
// the rest of this module's "nil option value is a no-op" convention).
func WithProgress(fn func(k int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.Progress = fn
		}
	}
}

func defaultOptions() Options {
	return Options{Progress: func(int) {}}
}

// VertexID re-exports graphstore.VertexID so callers of this package rarely
// need to import graphstore directly just to name the id type.
type VertexID = graphstore.VertexID
