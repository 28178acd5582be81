package kcore

// decomposer encapsulates the mutable bucket-queue state of one peeling
// run, following this module's convention (see subgraph.walker, ikc
// driver) of boxing a performance-critical loop's working state in an
// unexported struct rather than threading a dozen slices through helpers.
type decomposer struct {
	g       Graph
	n       int
	degree  []int        // current (decreasing) degree of each vertex
	vert    []VertexID   // bucket array: vertices ordered by current degree
	pos     []int        // pos[v] = index of v within vert
	binHead []int        // binHead[d] = first index in vert whose degree is d
	core    []uint32
}

// Decompose runs the Batagelj–Zaveršnik peeling algorithm over g and
// returns the resulting core numbers and max core.
//
// Progress reporting (optional, via WithProgress): Decompose does not hold
// any lock while invoking the callback, and the callback itself must not
// mutate g — that invariant is enforced by convention (the callback only
// ever receives an int), not by the type system. A panicking callback
// propagates to the caller of Decompose unchanged: Decompose holds no
// persistent state across calls, so there is nothing to roll back.
//
// Complexity: O(n+m) time, O(n+m) space.
func Decompose(g Graph, opts ...Option) *Decomposition {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumVertices()
	if n == 0 {
		return &Decomposition{Core: nil, MaxCore: 0}
	}

	d := &decomposer{
		g:      g,
		n:      n,
		degree: make([]int, n),
		core:   make([]uint32, n),
	}
	maxDeg := d.loadDegrees()
	d.buildBuckets(maxDeg)
	maxCore := d.peel(maxDeg, o.Progress)

	return &Decomposition{Core: d.core, MaxCore: maxCore}
}

// loadDegrees snapshots every vertex's current degree and returns the max.
func (d *decomposer) loadDegrees() int {
	maxDeg := 0
	for v := 0; v < d.n; v++ {
		deg := d.g.Degree(VertexID(v))
		d.degree[v] = deg
		if deg > maxDeg {
			maxDeg = deg
		}
	}

	return maxDeg
}

// buildBuckets performs a counting sort of vertices by current degree,
// producing vert/pos/binHead such that vert[binHead[x] : binHead[x+1]]
// holds exactly the vertices of degree x, and pos[v] locates v within vert.
func (d *decomposer) buildBuckets(maxDeg int) {
	count := make([]int, maxDeg+2)
	for v := 0; v < d.n; v++ {
		count[d.degree[v]]++
	}
	// prefix sum -> binHead[x] = first slot for degree x
	binHead := make([]int, maxDeg+2)
	total := 0
	for x := 0; x <= maxDeg; x++ {
		binHead[x] = total
		total += count[x]
	}

	vert := make([]VertexID, d.n)
	pos := make([]int, d.n)
	// next[x] tracks the next free slot within degree bucket x as we place
	// vertices; starts as a copy of binHead.
	next := make([]int, maxDeg+2)
	copy(next, binHead)
	for v := 0; v < d.n; v++ {
		slot := next[d.degree[v]]
		vert[slot] = VertexID(v)
		pos[v] = slot
		next[d.degree[v]]++
	}

	d.vert = vert
	d.pos = pos
	d.binHead = binHead
}

// peel drains buckets in increasing degree order, assigning core numbers
// and shifting neighbors toward lower buckets as their degree drops.
func (d *decomposer) peel(maxDeg int, progress func(k int)) int {
	maxCore := 0
	lastBucket := -1
	for i := 0; i < d.n; i++ {
		v := d.vert[i]
		dv := d.degree[v]
		d.core[v] = uint32(dv)
		if dv > maxCore {
			maxCore = dv
		}

		if dv != lastBucket {
			lastBucket = dv
			progress(maxDeg - dv) // once per new bucket: remaining headroom below the max degree
		}

		for _, u := range d.g.Neighbors(v) {
			du := d.degree[u]
			if du <= dv {
				continue // u already finalized or in the same bucket
			}
			// Move u to the front of its current bucket, then shrink the
			// bucket's start so a later, equal-degree neighbor lands after it.
			pu := d.pos[u]
			pw := d.binHead[du]
			w := d.vert[pw]
			if u != w {
				d.vert[pu], d.vert[pw] = w, u
				d.pos[u], d.pos[w] = pw, pu
			}
			d.binHead[du]++
			d.degree[u]--
		}
	}

	return maxCore
}
