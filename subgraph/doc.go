// Package subgraph implements the maximal- and minimum-k-core search
// primitives: given a (possibly cached) kcore.Decomposition, find the
// connected component of vertices at or above a core-number threshold,
// either anchored at a query vertex or chosen as the smallest such
// component graph-wide.
//
// All three operations run in O(n+m) given a decomposition; when none is
// supplied they compute one first (also O(n+m)), and return it so callers
// can cache it across repeated queries at the call site rather than
// inside the library.
package subgraph
