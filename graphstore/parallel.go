package graphstore

import (
	"runtime"
	"sort"
	"sync"
)

// SortAdjacency sorts every vertex's adjacency slice in ascending internal
// id order, in parallel across vertices. This is the one embarrassingly
// parallel post-load step of a bulk load: after a single-writer bulk load
// via InsertEdge, callers may invoke SortAdjacency once to give subsequent
// reads (Neighbors, the k-core decomposer) a deterministic iteration order.
//
// numThreads <= 0 defaults to runtime.GOMAXPROCS(0), mirroring the
// "num_threads" configuration option's documented default.
// Complexity: O((V+E)/numThreads · log(maxdeg)) wall-clock, O(1) extra space.
// Concurrency: exclusive — callers must not mutate the graph concurrently
// with SortAdjacency.
func (g *Graph) SortAdjacency(numThreads int) {
	if numThreads <= 0 {
		numThreads = runtime.GOMAXPROCS(0)
	}
	if numThreads < 1 {
		numThreads = 1
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()

	n := len(g.adjacency)
	if n == 0 {
		return
	}
	if numThreads > n {
		numThreads = n
	}

	chunk := (n + numThreads - 1) / numThreads
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for v := start; v < end; v++ {
				adj := g.adjacency[v]
				sort.Slice(adj, func(i, j int) bool { return adj[i] < adj[j] })
			}
		}(start, end)
	}
	wg.Wait()
}
