package ikcio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikramr2/ikcore/ikc"
	"github.com/vikramr2/ikcore/ikcio"
)

func sampleClusters() []ikc.Cluster {
	return []ikc.Cluster{
		{Nodes: []uint64{2, 0, 1}, KValue: 2, Modularity: 0.125},
		{Nodes: []uint64{10, 11}, KValue: 3, Modularity: 0.0},
	}
}

func TestTSVWriter_SortedNoHeader(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, ikcio.TSVWriter{}.Write(sampleClusters(), &buf))

	want := "0\t1\n1\t1\n2\t1\n10\t2\n11\t2\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVWriter_HeaderAndRows(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, ikcio.CSVWriter{}.Write(sampleClusters(), &buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "node_id,cluster_id,k_value,modularity", lines[0])
	assert.Equal(t, "0,1,2,0.125", lines[1])
	assert.Equal(t, "11,2,3,0", lines[5])
}

func TestTSVWriter_Empty(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, ikcio.TSVWriter{}.Write(nil, &buf))
	assert.Empty(t, buf.String())
}
