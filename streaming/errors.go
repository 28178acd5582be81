package streaming

import "errors"

var (
	// ErrNotInitialized is returned by AddEdges, AddNodes, Update and
	// BeginBatch called before InitialClustering has produced a clustering
	// (CommitBatch called then reports ErrBatchStateViolation instead).
	ErrNotInitialized = errors.New("streaming: engine not initialized: call InitialClustering first")

	// ErrEdgeReferencesUnknownVertex is returned by Update when an edge
	// endpoint is neither a known vertex nor listed in the call's own
	// nodes slice.
	ErrEdgeReferencesUnknownVertex = errors.New("streaming: edge references unknown vertex")

	// ErrBatchStateViolation is returned by CommitBatch called outside
	// batch mode.
	ErrBatchStateViolation = errors.New("streaming: not in batch mode")
)
