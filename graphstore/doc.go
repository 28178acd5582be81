// Package graphstore provides a thread-safe, undirected, unweighted graph
// store with a stable external-id ↔ dense-internal-id mapping.
//
// Vertices arrive with an arbitrary external id (as read from an edge list,
// for example) and are assigned a dense internal id (0..n-1) on first
// insertion. Adjacency is stored per internal id so the k-core decomposer
// and subgraph search packages can index directly into slices instead of
// hashing on every neighbor access.
//
// Graph exposes two separate sync.RWMutex locks internally (muVert for the
// id mapping, muAdj for adjacency), mirroring the rest of this module's
// locking discipline: release each as soon as possible, and when both are
// needed (vertex insertion growing the adjacency slices) take muVert
// first, muAdj inside it.
//
// Graph's lookups (ToExternal, ToInternal) report a missing id with a
// plain comma-ok bool, not a sentinel error: neither InsertVertex nor
// InsertEdge has a failure mode, so there is nothing here for a sentinel
// to report — mirroring the teacher's own core.HasVertex(id) bool
// alongside its error-returning mutators.
//
// This file declares the package doc comment only; see types.go for
// Graph and methods.go / parallel.go for behavior.
package graphstore
