// Package ikc implements the Iterative K-Core Clustering driver: repeated
// peeling of the current maximum k-core, scored by single-cluster
// modularity, until the graph is exhausted or the max core drops below a
// configured floor.
//
// Modularity reference: total_m is fixed to the graph's edge count at the
// start of Run and never recomputed as vertices are peeled, so every
// cluster a single Run emits is scored against the same baseline. The
// streaming package builds on this per-call stability but rebases total_m
// between calls as the graph grows; see its own doc comment.
package ikc
