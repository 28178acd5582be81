package kcore

// SubgraphView presents a read-only induced-subgraph restriction of an
// underlying Graph as its own Graph, with a dense local id space
// [0, len(vertices)) instead of the underlying graph's ids. Decompose run
// against a SubgraphView costs O(|vertices| + edges among them), not
// O(underlying.NumVertices()) — this is what lets a caller bound a
// decomposition to a small region of a much larger graph.
//
// An edge of the underlying graph is only visible through SubgraphView
// when both endpoints are among vertices; any neighbor outside the
// restriction is simply absent from the view.
type SubgraphView struct {
	g        Graph
	local    []VertexID
	localIdx map[VertexID]int
}

// NewSubgraphView builds a view of g restricted to vertices.
func NewSubgraphView(g Graph, vertices []VertexID) *SubgraphView {
	idx := make(map[VertexID]int, len(vertices))
	for i, v := range vertices {
		idx[v] = i
	}

	return &SubgraphView{g: g, local: append([]VertexID(nil), vertices...), localIdx: idx}
}

// NumVertices satisfies Graph.
func (s *SubgraphView) NumVertices() int { return len(s.local) }

// Degree satisfies Graph.
func (s *SubgraphView) Degree(v VertexID) int {
	return len(s.Neighbors(v))
}

// Neighbors satisfies Graph. Returned ids are local, not the underlying
// graph's ids; use Original to translate them back.
func (s *SubgraphView) Neighbors(v VertexID) []VertexID {
	nbrs := s.g.Neighbors(s.local[v])
	out := make([]VertexID, 0, len(nbrs))
	for _, u := range nbrs {
		if li, ok := s.localIdx[u]; ok {
			out = append(out, VertexID(li))
		}
	}

	return out
}

// Original maps a local id back to the underlying Graph's id space.
func (s *SubgraphView) Original(local VertexID) VertexID { return s.local[local] }
