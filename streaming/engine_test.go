package streaming_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikramr2/ikcore/graphstore"
	"github.com/vikramr2/ikcore/streaming"
)

func twoTriangles() *graphstore.Graph {
	g := graphstore.New()
	for _, e := range [][2]uint64{{0, 1}, {1, 2}, {2, 0}, {10, 11}, {11, 12}, {12, 10}} {
		g.InsertEdge(e[0], e[1])
	}

	return g
}

// threeTriangles keeps a third, untouched triangle alongside the two that
// get bridged, so TestEngine_BridgeCreatesMerge can also assert that an
// unrelated cluster survives a merge elsewhere in the graph untouched.
func threeTriangles() *graphstore.Graph {
	g := twoTriangles()
	for _, e := range [][2]uint64{{20, 21}, {21, 22}, {22, 20}} {
		g.InsertEdge(e[0], e[1])
	}

	return g
}

func TestEngine_MutatingCallsBeforeInitRejected(t *testing.T) {
	eng := streaming.New()

	err := eng.AddEdges([][2]uint64{{0, 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, streaming.ErrNotInitialized))

	err = eng.BeginBatch()
	require.Error(t, err)
	assert.True(t, errors.Is(err, streaming.ErrNotInitialized))
}

func TestEngine_InitialClustering(t *testing.T) {
	eng := streaming.New(streaming.WithMinK(2), streaming.WithGraph(twoTriangles()))

	clusters, err := eng.InitialClustering()
	require.NoError(t, err)
	assert.Len(t, clusters, 2)
	assert.Equal(t, 6, eng.NumVertices())
	assert.Equal(t, 6, eng.NumEdges())
	require.NoError(t, eng.VerifyEquivalence())
}

// Streaming bridge-creates-merge: a single edge connecting two of three
// pre-existing triangles invalidates both their clusters, counts as one
// merge candidate, and the post-update clustering holds one six-vertex
// cluster plus the untouched third triangle.
func TestEngine_BridgeCreatesMerge(t *testing.T) {
	eng := streaming.New(streaming.WithMinK(2), streaming.WithGraph(threeTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)
	require.Len(t, eng.Clustering(), 3)

	err = eng.AddEdges([][2]uint64{{2, 10}})
	require.NoError(t, err)

	stats := eng.LastStats()
	assert.GreaterOrEqual(t, stats.InvalidatedClusters, 2)
	assert.GreaterOrEqual(t, stats.MergeCandidates, 1)

	clustering := eng.Clustering()
	require.Len(t, clustering, 2)

	var merged []uint64
	for _, c := range clustering {
		if len(c.Nodes) == 6 {
			merged = c.Nodes
		}
	}
	assert.ElementsMatch(t, []uint64{0, 1, 2, 10, 11, 12}, merged)
	require.NoError(t, eng.VerifyEquivalence())
}

// TestEngine_BridgeCreatesMerge_UnpaddedTwoTriangles exercises the bridge
// merge literally, with no third triangle padding the edge count: two
// disjoint triangles only, then add_edges([(2,10)]). The merged six-vertex
// candidate is the entire live graph once the bridge lands, so by the
// handshake lemma its modularity against the rebased total_m is exactly 0
// — admitted by the q >= 0 filter — and the single 6-vertex cluster is
// emitted. This requires total_m to be rebased rather than frozen at its
// InitialClustering value of 6 forever.
func TestEngine_BridgeCreatesMerge_UnpaddedTwoTriangles(t *testing.T) {
	eng := streaming.New(streaming.WithMinK(2), streaming.WithGraph(twoTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)
	require.Len(t, eng.Clustering(), 2)

	err = eng.AddEdges([][2]uint64{{2, 10}})
	require.NoError(t, err)

	stats := eng.LastStats()
	assert.Equal(t, 2, stats.InvalidatedClusters)
	assert.Equal(t, 1, stats.MergeCandidates)

	clustering := eng.Clustering()
	require.Len(t, clustering, 1)
	assert.Equal(t, 2, clustering[0].KValue)
	assert.Equal(t, 0.0, clustering[0].Modularity)
	assert.ElementsMatch(t, []uint64{0, 1, 2, 10, 11, 12}, clustering[0].Nodes)
	require.NoError(t, eng.VerifyEquivalence())
}

// Streaming isolated nodes: a brand-new triangle clusters on its own
// without disturbing the pre-existing clustering.
func TestEngine_IsolatedTriangleClusters(t *testing.T) {
	eng := streaming.New(streaming.WithMinK(2), streaming.WithGraph(twoTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)

	err = eng.AddNodes([]uint64{99, 100, 101})
	require.NoError(t, err)
	err = eng.AddEdges([][2]uint64{{99, 100}, {100, 101}, {101, 99}})
	require.NoError(t, err)

	stats := eng.LastStats()
	assert.GreaterOrEqual(t, stats.ValidClusters, 1)

	clustering := eng.Clustering()
	require.Len(t, clustering, 3)

	found := false
	for _, c := range clustering {
		if c.KValue == 2 && len(c.Nodes) == 3 {
			if c.Nodes[0] == 99 || c.Nodes[0] == 100 || c.Nodes[0] == 101 {
				found = true
			}
		}
	}
	assert.True(t, found, "expected a new 3-node cluster among %v", clustering)
	require.NoError(t, eng.VerifyEquivalence())
}

func TestEngine_BatchModeDefersRecompute(t *testing.T) {
	eng := streaming.New(streaming.WithMinK(2), streaming.WithGraph(twoTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)

	require.NoError(t, eng.BeginBatch())
	assert.True(t, eng.IsBatchMode())

	require.NoError(t, eng.AddNodes([]uint64{99, 100, 101}))
	require.NoError(t, eng.AddEdges([][2]uint64{{99, 100}, {100, 101}, {101, 99}}))

	// Graph already grew, but clustering hasn't been touched yet.
	assert.Equal(t, 9, eng.NumVertices())
	assert.Len(t, eng.Clustering(), 2)

	require.NoError(t, eng.CommitBatch())
	assert.False(t, eng.IsBatchMode())
	assert.Len(t, eng.Clustering(), 3)
}

func TestEngine_CommitBatchOutsideBatchErrors(t *testing.T) {
	eng := streaming.New(streaming.WithGraph(twoTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)

	err = eng.CommitBatch()
	require.Error(t, err)
	assert.True(t, errors.Is(err, streaming.ErrBatchStateViolation))
}

func TestEngine_BeginBatchIdempotent(t *testing.T) {
	eng := streaming.New(streaming.WithGraph(twoTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)

	require.NoError(t, eng.BeginBatch())
	require.NoError(t, eng.BeginBatch())
	assert.True(t, eng.IsBatchMode())
}

func TestEngine_UpdateRejectsUnknownEndpoint(t *testing.T) {
	eng := streaming.New(streaming.WithGraph(twoTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)

	before := eng.NumVertices()
	err = eng.Update([][2]uint64{{0, 9999}}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, streaming.ErrEdgeReferencesUnknownVertex))
	// No partial mutation: the unknown-endpoint edge must not have grown
	// the graph before validation failed.
	assert.Equal(t, before, eng.NumVertices())
}

func TestEngine_UpdateAcceptsDeclaredNode(t *testing.T) {
	eng := streaming.New(streaming.WithGraph(twoTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)

	err = eng.Update([][2]uint64{{0, 500}}, []uint64{500})
	require.NoError(t, err)
	assert.Equal(t, 7, eng.NumVertices())
}

func TestEngine_ConcurrentReadsDuringClustering(t *testing.T) {
	eng := streaming.New(streaming.WithMinK(2), streaming.WithGraph(twoTriangles()))
	_, err := eng.InitialClustering()
	require.NoError(t, err)

	const rounds = 50
	var wg sync.WaitGroup
	wg.Add(rounds)
	for i := 0; i < rounds; i++ {
		go func() {
			defer wg.Done()
			_ = eng.Clustering()
			_ = eng.MaxCore()
			_ = eng.NumVertices()
		}()
	}
	wg.Wait()
}
