// Package edgelist loads a TSV edge list into a graphstore.Graph: the
// default, swappable implementation of the byte-stream-to-(u64,u64)-pairs
// parser the core graph store is built against.
package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vikramr2/ikcore/graphstore"
)

// ErrInputFileNotFound is returned by LoadFile when the named edge-list
// file does not exist or cannot be opened for reading.
var ErrInputFileNotFound = errors.New("edgelist: input file not found")

// Load reads whitespace/tab-separated (u64, u64) pairs, one per line, and
// inserts each as an edge into g. Blank lines and lines beginning with '#'
// are skipped. Self-loops and duplicate edges are accepted and handled the
// same way Graph.InsertEdge always handles them: silently collapsed.
//
// Load does not call g.SortAdjacency; callers that want deterministic
// Neighbors() iteration order after a bulk load should call it themselves
// once loading finishes.
func Load(g *graphstore.Graph, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return n, fmt.Errorf("edgelist: line %d: want 2 fields, got %d", lineNo, len(fields))
		}

		u, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return n, fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}
		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return n, fmt.Errorf("edgelist: line %d: %w", lineNo, err)
		}

		g.InsertEdge(u, v)
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("edgelist: %w", err)
	}

	return n, nil
}

// LoadFile opens path and delegates to Load, wrapping a missing or
// unreadable file as ErrInputFileNotFound rather than the raw os error.
func LoadFile(g *graphstore.Graph, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrInputFileNotFound, path, err)
	}
	defer f.Close()

	return Load(g, f)
}
