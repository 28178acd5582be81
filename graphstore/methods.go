package graphstore

// InsertVertex inserts ext if absent and returns its internal id.
// Idempotent: returns the existing internal id if ext is already known.
//
// Locking: the id mapping is grown under muVert, and the adjacency
// catalog's outer slots are grown in the same critical section under
// muAdj (taken inside muVert), so a vertex's internal id always aligns
// with its adjacency slot, even under concurrent inserts of distinct ids.
// Complexity: O(1) amortized.
func (g *Graph) InsertVertex(ext uint64) VertexID {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	return g.insertVertexLocked(ext)
}

// insertVertexLocked assumes muVert is already held; it takes muAdj itself
// to grow the adjacency slices.
func (g *Graph) insertVertexLocked(ext uint64) VertexID {
	if id, ok := g.extToInt[ext]; ok {
		return id
	}
	id := VertexID(len(g.intToExt))
	g.extToInt[ext] = id
	g.intToExt = append(g.intToExt, ext)
	g.muAdj.Lock()
	g.adjacency = append(g.adjacency, nil)
	g.adjSet = append(g.adjSet, make(map[VertexID]struct{}))
	g.muAdj.Unlock()

	return id
}

// InsertEdge inserts both endpoints if absent, then adds an undirected
// connection between them. Self-loops and duplicate edges are silently
// ignored.
//
// Complexity: O(1) amortized (map membership checks for dedup).
func (g *Graph) InsertEdge(uExt, vExt uint64) {
	g.muVert.Lock()
	u := g.insertVertexLocked(uExt)
	v := g.insertVertexLocked(vExt)
	g.muVert.Unlock()

	if u == v {
		return // self-loop: silently ignored
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if _, dup := g.adjSet[u][v]; dup {
		return // parallel edge: silently ignored
	}
	g.adjSet[u][v] = struct{}{}
	g.adjSet[v][u] = struct{}{}
	g.adjacency[u] = append(g.adjacency[u], v)
	g.adjacency[v] = append(g.adjacency[v], u)
	g.numEdges++
}

// NumVertices returns the number of distinct vertices inserted so far.
// Complexity: O(1).
func (g *Graph) NumVertices() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.intToExt)
}

// NumEdges returns the number of distinct undirected edges inserted so far.
// Complexity: O(1).
func (g *Graph) NumEdges() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.numEdges
}

// Degree returns the number of neighbors of internal id v.
// Complexity: O(1).
func (g *Graph) Degree(v VertexID) int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	if int(v) >= len(g.adjacency) {
		return 0
	}

	return len(g.adjacency[v])
}

// Neighbors returns the (unsorted, caller-owned copy of the) internal ids
// adjacent to v. Order is insertion order, not necessarily sorted; callers
// needing determinism should sort the returned slice or use SortAdjacency
// beforehand.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v VertexID) []VertexID {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	if int(v) >= len(g.adjacency) {
		return nil
	}
	out := make([]VertexID, len(g.adjacency[v]))
	copy(out, g.adjacency[v])

	return out
}

// ToExternal maps an internal id back to its external id. Panics-free:
// callers must only pass ids obtained from this Graph (e.g. via
// InsertVertex or Neighbors); out-of-range ids return (0, false).
// Complexity: O(1).
func (g *Graph) ToExternal(v VertexID) (uint64, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if int(v) >= len(g.intToExt) {
		return 0, false
	}

	return g.intToExt[v], true
}

// ToInternal maps an external id to its internal id, if known.
// Complexity: O(1).
func (g *Graph) ToInternal(ext uint64) (VertexID, bool) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	id, ok := g.extToInt[ext]

	return id, ok
}

// AllInternalIDs returns every current internal id, in ascending order.
// Complexity: O(V).
func (g *Graph) AllInternalIDs() []VertexID {
	g.muVert.RLock()
	n := len(g.intToExt)
	g.muVert.RUnlock()

	ids := make([]VertexID, n)
	for i := range ids {
		ids[i] = VertexID(i)
	}

	return ids
}
