// Package streaming maintains an Iterative K-Core Clustering as a graph
// grows. It owns a graphstore.Graph, the graph's current k-core
// decomposition, and a Clustering, and recomputes only the affected
// region when edges or vertices are added — rather than rerunning ikc.Run
// on the whole graph from scratch — while keeping every cluster emitted by
// one pass comparable to the others from that same pass: the modularity
// reference (total_m) is rebased to the graph's live edge count at the
// start of InitialClustering and at the start of every later recompute,
// not held at its very first value forever.
//
// Engine is a single explicit state machine: NORMAL before
// InitialClustering has run, CLUSTERED once it has, and BATCHING between
// BeginBatch and CommitBatch. Mutating methods reject calls made from the
// wrong state with a typed sentinel rather than a runtime assertion.
package streaming
