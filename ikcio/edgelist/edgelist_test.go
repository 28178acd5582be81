package edgelist_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikramr2/ikcore/graphstore"
	"github.com/vikramr2/ikcore/ikcio/edgelist"
)

func TestLoad_BasicPairs(t *testing.T) {
	g := graphstore.New()
	n, err := edgelist.Load(g, strings.NewReader("0\t1\n1\t2\n2\t0\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())
}

func TestLoad_SkipsBlankAndCommentLines(t *testing.T) {
	g := graphstore.New()
	n, err := edgelist.Load(g, strings.NewReader("# comment\n\n0 1\n\n# another\n1 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 3, g.NumVertices())
}

func TestLoad_MalformedLineErrors(t *testing.T) {
	g := graphstore.New()
	_, err := edgelist.Load(g, strings.NewReader("0\tnotanumber\n"))
	require.Error(t, err)
}

func TestLoad_ShortLineErrors(t *testing.T) {
	g := graphstore.New()
	_, err := edgelist.Load(g, strings.NewReader("0\n"))
	require.Error(t, err)
}

func TestLoadFile_MissingFile(t *testing.T) {
	g := graphstore.New()
	_, err := edgelist.LoadFile(g, "/nonexistent/path/does-not-exist.tsv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, edgelist.ErrInputFileNotFound))
}
