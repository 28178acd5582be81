package streaming

import (
	"sync"
	"time"

	"github.com/vikramr2/ikcore/graphstore"
	"github.com/vikramr2/ikcore/kcore"
	"github.com/vikramr2/ikcore/ikc"
)

// Engine is a persistent graph plus its current k-core decomposition and
// clustering, updated incrementally as edges and vertices are added.
//
// Concurrency: mu serializes every mutating method (InitialClustering,
// AddEdges, AddNodes, Update, BeginBatch, CommitBatch); read accessors
// take a read lock, so a Clustering snapshot returned by one call is
// unaffected by a later one (the slice itself is never mutated after
// being returned, only replaced).
type Engine struct {
	mu sync.RWMutex

	g   *graphstore.Graph
	dec *kcore.Decomposition

	clusters  []ikc.Cluster
	clusterOf map[uint64]int // external id -> index into clusters

	// totalM is the modularity reference |E| each candidate cluster is
	// scored against. It is stable *within* one InitialClustering or
	// recompute pass (every cluster that pass emits is scored against the
	// same value, so clusters from a single pass stay comparable to one
	// another), but is rebased to the graph's live edge count at the start
	// of every later pass rather than held at its InitialClustering value
	// forever.
	totalM int
	minK   int
	logger Logger

	st state

	batchAffected map[graphstore.VertexID]struct{}
	batchEdges    [][2]uint64

	lastStats Stats
}

// New creates an Engine in state NORMAL. It owns a fresh empty graph unless
// WithGraph seeds it with one already populated by the caller.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := o.Graph
	if g == nil {
		g = graphstore.New()
	}

	return &Engine{
		g:         g,
		clusterOf: make(map[uint64]int),
		minK:      o.MinK,
		logger:    o.Logger,
		st:        stateNormal,
	}
}

// InitialClustering runs ikc.Run on the current graph, populates the
// cluster-membership index, and sets total_m to the resulting edge count.
// total_m is rebased to the live edge count again at the start of every
// later recompute (see recompute.go) rather than held at this initial
// value forever — pure freeze-at-InitialClustering lets a later merge
// candidate's modularity drift negative purely because the live graph
// grew edges the original baseline never saw, dropping a merge a fresh
// from-scratch clustering of the same graph would keep.
func (e *Engine) InitialClustering(opts ...CallOption) ([]ikc.Cluster, error) {
	co := defaultCallOptions()
	for _, opt := range opts {
		opt(&co)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st == stateBatching {
		return nil, ErrBatchStateViolation
	}

	startAll := time.Now()

	progress := func(int) {}
	if co.verbose {
		progress = func(k int) { e.logger.Printf("streaming: ikc peeling k=%d", k) }
	}

	res, err := ikc.Run(e.g, ikc.WithMinK(e.minK), ikc.WithProgress(progress))
	if err != nil {
		return nil, err
	}

	e.dec = kcore.Decompose(e.g)
	e.clusters = res.Clusters
	e.totalM = e.g.NumEdges()
	e.st = stateClustered
	e.rebuildClusterOf()

	e.lastStats = Stats{
		AffectedNodes:   e.g.NumVertices(),
		ValidClusters:   0,
		RecomputeTimeMs: float64(time.Since(startAll).Microseconds()) / 1000,
		TotalTimeMs:     float64(time.Since(startAll).Microseconds()) / 1000,
	}

	if co.verbose {
		e.logger.Printf("streaming: initial clustering produced %d clusters", len(e.clusters))
	}

	return cloneClusters(e.clusters), nil
}

// AddEdges inserts edges, creating endpoints on demand, then (unless
// WithRecompute(false) is given, or the engine is batching) recomputes.
func (e *Engine) AddEdges(edges [][2]uint64, opts ...CallOption) error {
	return e.mutate(edges, nil, false, opts...)
}

// AddNodes inserts vertices with no edges, then (unless WithRecompute(false)
// is given, or the engine is batching) recomputes.
func (e *Engine) AddNodes(nodes []uint64, opts ...CallOption) error {
	return e.mutate(nil, nodes, false, opts...)
}

// Update inserts nodes then edges, failing with
// ErrEdgeReferencesUnknownVertex if an edge endpoint is neither an
// already-known vertex nor listed in nodes.
func (e *Engine) Update(edges [][2]uint64, nodes []uint64, opts ...CallOption) error {
	return e.mutate(edges, nodes, true, opts...)
}

func (e *Engine) mutate(edges [][2]uint64, nodes []uint64, strict bool, opts ...CallOption) error {
	co := defaultCallOptions()
	for _, opt := range opts {
		opt(&co)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st == stateNormal {
		return ErrNotInitialized
	}

	if strict {
		known := make(map[uint64]struct{}, len(nodes))
		for _, ext := range nodes {
			known[ext] = struct{}{}
		}
		for _, edge := range edges {
			for _, ext := range edge {
				if _, ok := e.g.ToInternal(ext); ok {
					continue
				}
				if _, ok := known[ext]; ok {
					continue
				}

				return ErrEdgeReferencesUnknownVertex
			}
		}
	}

	affected := make(map[graphstore.VertexID]struct{}, len(nodes)+2*len(edges))
	for _, ext := range nodes {
		affected[e.g.InsertVertex(ext)] = struct{}{}
	}
	for _, edge := range edges {
		e.g.InsertVertex(edge[0])
		e.g.InsertVertex(edge[1])
		e.g.InsertEdge(edge[0], edge[1])
		u, _ := e.g.ToInternal(edge[0])
		v, _ := e.g.ToInternal(edge[1])
		affected[u] = struct{}{}
		affected[v] = struct{}{}
	}

	if e.st == stateBatching {
		for v := range affected {
			e.batchAffected[v] = struct{}{}
		}
		e.batchEdges = append(e.batchEdges, edges...)

		return nil
	}

	if !co.recompute {
		return nil
	}

	return e.recompute(edges, affected, co.verbose)
}

// BeginBatch enters batch mode. Idempotent: a no-op if already batching.
func (e *Engine) BeginBatch() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st == stateNormal {
		return ErrNotInitialized
	}
	if e.st == stateBatching {
		return nil
	}
	e.st = stateBatching
	e.batchAffected = make(map[graphstore.VertexID]struct{})
	e.batchEdges = nil

	return nil
}

// CommitBatch leaves batch mode and runs one recompute pass over every
// vertex touched since BeginBatch. An empty batch still transitions back
// to CLUSTERED but skips the (vacuous) recompute.
func (e *Engine) CommitBatch(opts ...CallOption) error {
	co := defaultCallOptions()
	for _, opt := range opts {
		opt(&co)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.st != stateBatching {
		return ErrBatchStateViolation
	}

	affected := e.batchAffected
	edges := e.batchEdges
	e.batchAffected = nil
	e.batchEdges = nil
	e.st = stateClustered

	if len(affected) == 0 {
		e.lastStats = Stats{}

		return nil
	}

	return e.recompute(edges, affected, co.verbose)
}

// NumVertices returns the live graph's vertex count.
func (e *Engine) NumVertices() int {
	return e.g.NumVertices()
}

// NumEdges returns the live graph's edge count (not total_m, which is only
// rebased at the start of InitialClustering and of each recompute pass).
func (e *Engine) NumEdges() int {
	return e.g.NumEdges()
}

// MaxCore returns the current graph-wide maximum core number.
func (e *Engine) MaxCore() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.dec == nil {
		return 0
	}

	return e.dec.MaxCore
}

// LastStats returns the statistics from the most recent recompute pass
// (InitialClustering, a non-batched AddEdges/AddNodes/Update, or
// CommitBatch).
func (e *Engine) LastStats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.lastStats
}

// IsBatchMode reports whether the engine is between BeginBatch and
// CommitBatch.
func (e *Engine) IsBatchMode() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.st == stateBatching
}

// Clustering returns a snapshot of the current clustering. The returned
// slice and its Clusters are never mutated in place by a later update
// (updates replace e.clusters wholesale), so a caller may hold onto it
// safely across subsequent calls.
func (e *Engine) Clustering() []ikc.Cluster {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return cloneClusters(e.clusters)
}

func (e *Engine) rebuildClusterOf() {
	e.clusterOf = make(map[uint64]int, len(e.clusters)*4)
	for idx, c := range e.clusters {
		for _, ext := range c.Nodes {
			e.clusterOf[ext] = idx
		}
	}
}

func cloneClusters(in []ikc.Cluster) []ikc.Cluster {
	out := make([]ikc.Cluster, len(in))
	for i, c := range in {
		nodes := make([]uint64, len(c.Nodes))
		copy(nodes, c.Nodes)
		out[i] = ikc.Cluster{Nodes: nodes, KValue: c.KValue, Modularity: c.Modularity}
	}

	return out
}
