package subgraph

// Result is a connected component produced by Maximal, Minimum, or
// MinimumContaining: the k-threshold used to select it, and its member
// vertices as external ids in ascending external-id order.
type Result struct {
	// K is the core-number threshold the component was extracted at
	// (C[q] for Maximal, the queried k for the Minimum variants).
	K int

	// Nodes holds member external vertex ids.
	Nodes []uint64

	// Size is len(Nodes), kept as its own field so callers don't need to
	// re-derive it from Nodes just to report component size.
	Size int
}
