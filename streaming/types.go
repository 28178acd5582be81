package streaming

import "github.com/vikramr2/ikcore/graphstore"

// state is Engine's position in the NORMAL → CLUSTERED ⇄ BATCHING machine.
type state int

const (
	stateNormal state = iota
	stateClustered
	stateBatching
)

// Logger receives human-readable progress lines when a call's verbose
// option is set. *log.Logger satisfies this directly.
type Logger interface {
	Printf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Options configures a new Engine.
type Options struct {
	MinK       int
	Logger     Logger
	NumThreads int
	Graph      *graphstore.Graph
}

// Option configures New.
type Option func(*Options)

// WithMinK sets the peeling floor used by InitialClustering and every
// subsequent recompute.
func WithMinK(k int) Option {
	return func(o *Options) { o.MinK = k }
}

// WithGraph seeds a new Engine with an already-populated graph, e.g. one
// bulk-loaded by ikcio/edgelist before InitialClustering runs. Mutating
// methods (AddEdges, AddNodes, Update) are unavailable until
// InitialClustering has run at least once, so this is the only way to
// hand the engine a starting graph larger than the empty one.
func WithGraph(g *graphstore.Graph) Option {
	return func(o *Options) { o.Graph = g }
}

// WithLogger sets the sink for verbose progress lines. A nil logger is
// ignored (defaultOptions already installs a no-op).
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithNumThreads records a worker cap in Options.NumThreads. The Engine
// runs no data-parallel step of its own and does not read this value;
// sorting a seeded graph's adjacency is left to graphstore.SortAdjacency,
// called by the caller with its own thread count.
func WithNumThreads(n int) Option {
	return func(o *Options) { o.NumThreads = n }
}

func defaultOptions() Options {
	return Options{Logger: nopLogger{}}
}

// callOptions configures one mutating call (AddEdges/AddNodes/Update/
// CommitBatch/InitialClustering).
type callOptions struct {
	recompute bool
	verbose   bool
}

// CallOption configures a single mutating call.
type CallOption func(*callOptions)

// WithRecompute controls whether the call triggers a recompute pass
// immediately (the default, true) or only mutates the graph, deferring
// recompute to a later call. Has no effect while batching, where recompute
// is always deferred to CommitBatch regardless of this option.
func WithRecompute(b bool) CallOption {
	return func(o *callOptions) { o.recompute = b }
}

// WithVerbose emits human-readable progress lines to the Engine's Logger
// for the duration of this call.
func WithVerbose(b bool) CallOption {
	return func(o *callOptions) { o.verbose = b }
}

func defaultCallOptions() callOptions {
	return callOptions{recompute: true}
}

// Stats is the outcome of the most recent recompute pass (InitialClustering
// counts as one).
type Stats struct {
	AffectedNodes       int
	InvalidatedClusters int
	ValidClusters       int
	MergeCandidates     int
	RecomputeTimeMs     float64
	TotalTimeMs         float64
}
