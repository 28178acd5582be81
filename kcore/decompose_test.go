package kcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikramr2/ikcore/graphstore"
	"github.com/vikramr2/ikcore/kcore"
)

func coreOf(t *testing.T, g *graphstore.Graph, dec *kcore.Decomposition, ext uint64) int {
	t.Helper()
	v, ok := g.ToInternal(ext)
	require.True(t, ok)

	return int(dec.Core[v])
}

func TestDecompose_Empty(t *testing.T) {
	g := graphstore.New()
	dec := kcore.Decompose(g)
	assert.Equal(t, 0, dec.MaxCore)
	assert.Empty(t, dec.Core)
}

// Triangle + square bridged: all of {0..6} have core number 2.
func TestDecompose_TriangleSquareBridged(t *testing.T) {
	g := graphstore.New()
	for _, e := range [][2]uint64{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 6}, {6, 3}, {2, 3}} {
		g.InsertEdge(e[0], e[1])
	}
	dec := kcore.Decompose(g)
	assert.Equal(t, 2, dec.MaxCore)
	for ext := uint64(0); ext <= 6; ext++ {
		assert.Equal(t, 2, coreOf(t, g, dec, ext), "vertex %d", ext)
	}
}

// Scenario 3: K4 plus pendant. Core = [3,3,3,3,1].
func TestDecompose_K4PlusPendant(t *testing.T) {
	g := graphstore.New()
	k4 := [][2]uint64{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	for _, e := range k4 {
		g.InsertEdge(e[0], e[1])
	}
	g.InsertEdge(3, 4)

	dec := kcore.Decompose(g)
	assert.Equal(t, 3, dec.MaxCore)
	for ext := uint64(0); ext <= 3; ext++ {
		assert.Equal(t, 3, coreOf(t, g, dec, ext))
	}
	assert.Equal(t, 1, coreOf(t, g, dec, 4))
}

// Scenario 6: Petersen graph is 3-regular, so every vertex has core 3.
func TestDecompose_Petersen(t *testing.T) {
	g := graphstore.New()
	outer := [][2]uint64{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}}
	inner := [][2]uint64{{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5}}
	spokes := [][2]uint64{{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}}
	for _, group := range [][][2]uint64{outer, inner, spokes} {
		for _, e := range group {
			g.InsertEdge(e[0], e[1])
		}
	}
	dec := kcore.Decompose(g)
	assert.Equal(t, 3, dec.MaxCore)
	assert.Equal(t, 10, g.NumVertices())
	for ext := uint64(0); ext < 10; ext++ {
		assert.Equal(t, 3, coreOf(t, g, dec, ext))
	}
}

func TestDecompose_ProgressMonotoneNonIncreasing(t *testing.T) {
	g := graphstore.New()
	for _, e := range [][2]uint64{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 6}, {6, 3}, {2, 3}} {
		g.InsertEdge(e[0], e[1])
	}
	var calls []int
	kcore.Decompose(g, kcore.WithProgress(func(k int) { calls = append(calls, k) }))
	for i := 1; i < len(calls); i++ {
		assert.LessOrEqual(t, calls[i], calls[i-1], "progress must be monotone non-increasing")
	}
	assert.LessOrEqual(t, len(calls), 3) // O(max_core), here max_core==2
}

// K-core soundness property: every vertex with core k has at least k
// neighbours whose core is also >= k.
func TestDecompose_Soundness(t *testing.T) {
	g := graphstore.New()
	edges := [][2]uint64{
		{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 6}, {6, 3}, {2, 3},
		{0, 7}, {7, 8},
	}
	for _, e := range edges {
		g.InsertEdge(e[0], e[1])
	}
	dec := kcore.Decompose(g)
	for v := 0; v < g.NumVertices(); v++ {
		k := dec.Core[v]
		count := 0
		for _, u := range g.Neighbors(graphstore.VertexID(v)) {
			if dec.Core[u] >= k {
				count++
			}
		}
		assert.GreaterOrEqual(t, count, int(k), "vertex %d soundness", v)
	}
}
