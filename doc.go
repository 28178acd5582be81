// Package ikcore (lvlath-style: thread-safe, pure Go, dependency-light) is an
// in-memory Iterative K-Core Clustering engine.
//
// 🚀 What is ikcore?
//
//	A graph-analytics toolkit that partitions the vertices of a large
//	undirected graph into cohesive communities by peeling successive maximum
//	k-cores and scoring each candidate via single-cluster modularity:
//
//	  • Graph store     — external⇄internal id mapping, growable adjacency
//	  • K-core decomposer — linear-time Batagelj–Zaveršnik peeling
//	  • Subgraph search — maximal / minimum k-core extraction
//	  • IKC driver      — iterative peel + modularity filter
//	  • Streaming engine — incremental recompute as edges/vertices arrive
//
// Everything is organized under six subpackages:
//
//	graphstore/ — Graph, vertex id mapping, adjacency, bulk load
//	kcore/      — core-number decomposition
//	subgraph/   — maximal/minimum k-core queries
//	ikc/        — the clustering driver
//	streaming/  — the incremental StreamingState engine
//	ikcio/      — TSV/CSV readers and writers (external-interface boundary)
//
// Quick example:
//
//	g := graphstore.New()
//	g.InsertEdge(0, 1)
//	g.InsertEdge(1, 2)
//	g.InsertEdge(2, 0)
//	result, err := ikc.Run(g, ikc.WithMinK(2))
//
//	go get github.com/vikramr2/ikcore
package ikcore
