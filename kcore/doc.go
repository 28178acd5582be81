// Package kcore computes core numbers for every vertex of a graphstore.Graph
// in O(n+m) time using the Batagelj–Zaveršnik bucket-queue peeling
// algorithm.
//
// Core number C[v] is the largest k such that v belongs to some k-core of
// the graph (a maximal induced subgraph with minimum degree ≥ k). The
// algorithm repeatedly extracts the vertex of smallest current degree,
// assigns it that degree as its core number, and decrements the current
// degree of its still-unprocessed neighbors — maintaining a contiguous,
// ordered bucket array so every extraction and degree decrement is O(1).
//
// Complexity:
//
//	– Time:  O(n+m)
//	– Space: O(n+m)
//
// Errors: none. An empty graph decomposes to MaxCore == 0 and an empty
// Core slice.
package kcore
