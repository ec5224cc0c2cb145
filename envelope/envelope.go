// Package envelope implements the dynamic upper envelope of lines
// ("Convex Hull Trick") over two cooperating B-tree indexes.
//
// Layout of the structure:
//
//   - bySlope — every surviving line, ordered by (slope, intercept).  This is
//     the primary index; insertion position and predecessor/successor
//     navigation during envelope repair all run against it.
//   - byBreak — the same *node values, ordered by (breakpoint, slope).  This
//     is the query index: Query locates the line with the smallest
//     breakpoint ≥ x in O(log n).
//
// A line's breakpoint is mutable metadata and simultaneously the key of the
// byBreak index.  Mutating a key in place would corrupt the tree, so every
// breakpoint update goes through setBreak, which deletes the node under its
// old key and reinserts it under the new one.  Invariant I1 — reading
// bySlope left to right, breakpoints are strictly ascending — guarantees the
// two indexes describe the same sequence of survivors.
package envelope

import "github.com/google/btree"

// node is one live line plus its derived envelope metadata.  Identity is the
// pointer; both indexes store the same *node.
type node[T Number] struct {
	slope     T
	intercept T
	bp        Breakpoint[T]
	indexed   bool // true once the node has an entry in byBreak
	probe     bool // true only for transient Query pivots, never stored
}

// slopeLess orders the primary index by ascending slope, then intercept.
// The intercept tie-break lets an old line and a new line of equal slope
// coexist while Insert decides which of the two survives.
func slopeLess[T Number](a, b *node[T]) bool {
	if a.slope != b.slope {
		return a.slope < b.slope
	}

	return a.intercept < b.intercept
}

// breakLess orders the query index by ascending breakpoint.  Probe pivots
// sort before real nodes of the same coordinate so that a line whose
// breakpoint equals the queried x is still found.  The (slope, intercept)
// tie-break keeps the order strict mid-repair, when two lines transiently
// share a breakpoint — including two equal-slope lines both holding +∞.
func breakLess[T Number](a, b *node[T]) bool {
	if a.bp.kind != b.bp.kind {
		return a.bp.kind < b.bp.kind
	}
	if a.bp.kind == bpFinite && a.bp.x != b.bp.x {
		return a.bp.x < b.bp.x
	}
	if a.probe != b.probe {
		return a.probe
	}
	if a.slope != b.slope {
		return a.slope < b.slope
	}

	return a.intercept < b.intercept
}

// Envelope maintains the upper envelope of lines y = k·x + m and answers
// Query(x) = max over all inserted lines of k·x + m.
//
// The numeric domain is fixed at construction: NewInteger computes
// breakpoints with floored division, NewReal with exact division.  An
// Envelope is not safe for concurrent use; see the package documentation.
type Envelope[T Number] struct {
	bySlope *btree.BTreeG[*node[T]] // primary index: (slope, intercept)
	byBreak *btree.BTreeG[*node[T]] // query index:   (breakpoint, slope)
	div     func(num, den T) T      // domain-specific division for intersections
	removed int                     // lines evicted by dominance cleanup
}

// NewInteger returns an empty envelope over a signed integer domain.
// Breakpoints are computed with floored division (rounding toward −∞), the
// rounding direction the envelope ordering depends on.
func NewInteger[T Integer](opts ...Option) *Envelope[T] {
	return newEnvelope[T](floorDiv[T], opts)
}

// NewReal returns an empty envelope over a floating-point domain.
// Breakpoints are exact quotients.
func NewReal[T Float](opts ...Option) *Envelope[T] {
	return newEnvelope[T](func(num, den T) T { return num / den }, opts)
}

// newEnvelope applies the functional options and wires both indexes.
func newEnvelope[T Number](div func(T, T) T, opts []Option) *Envelope[T] {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	return &Envelope[T]{
		bySlope: btree.NewG(cfg.Degree, slopeLess[T]),
		byBreak: btree.NewG(cfg.Degree, breakLess[T]),
		div:     div,
	}
}

// floorDiv divides num by den rounding toward −∞.  Go's native integer
// division truncates toward zero, so the quotient is adjusted down by one
// whenever the true quotient is negative and inexact.
func floorDiv[T Integer](num, den T) T {
	q := num / den
	if num%den != 0 && (num < 0) != (den < 0) {
		q--
	}

	return q
}

// Insert adds the line y = k·x + m and repairs the envelope: lines the new
// line makes obsolete are evicted on both sides, and if the new line is
// itself everywhere below the current envelope it is discarded on the spot.
//
// Complexity: O(log n) amortized.  A single call may evict many lines, but
// each line is evicted at most once after its own insertion, so total repair
// work across any sequence of n inserts is O(n) on top of the positional
// tree operations.
func (e *Envelope[T]) Insert(k, m T) {
	z := &node[T]{slope: k, intercept: m}

	// 1) An exact (slope, intercept) duplicate cannot change the envelope.
	if _, dup := e.bySlope.Get(z); dup {
		return
	}
	e.bySlope.ReplaceOrInsert(z)

	// 2) Right repair: compute z's breakpoint against its successor, evicting
	//    successors that z dominates entirely.  Each eviction shifts the next
	//    successor into place, so the intersection is re-evaluated until the
	//    first survivor (or the end of the set, giving z a +∞ breakpoint).
	for {
		s := e.succ(z)
		drop := e.intersect(z, s)
		if z.bp.NegInf() {
			// Equal-slope successor with the larger intercept: z is never
			// the maximum anywhere and contributes nothing.
			e.remove(z)

			return
		}
		if !drop {
			break
		}
		e.remove(s)
	}

	// 3) Predecessor check: z may itself be dominated by its left neighbor
	//    and whatever lies beyond it.  The loop runs more than once only to
	//    clear an equal-slope predecessor with a smaller intercept.
	x := e.pred(z)
	for x != nil {
		if e.intersect(x, z) {
			// z never rises above the envelope: undo the insertion and
			// restore x's breakpoint against its original right neighbor.
			e.remove(z)
			e.intersect(x, e.succ(x))
			break
		}
		if !x.bp.NegInf() {
			break
		}
		// Equal-slope predecessor with the smaller intercept: evict it and
		// re-evaluate z against the next line to the left.
		e.remove(x)
		x = e.pred(z)
	}

	// 4) Left walk: the recomputed breakpoint at x may have made lines
	//    further left obsolete.  While a predecessor's validity window
	//    reaches at or past the current line's, the current line never
	//    surfaces on the envelope; evict it and reconnect the pair around it.
	for x != nil {
		w := e.pred(x)
		if w == nil || w.bp.less(x.bp) {
			break
		}
		e.remove(x)
		e.intersect(w, e.succ(w))
		x = w
	}
}

// Query returns max over all inserted lines of k·x + m.
//
// Precondition: at least one line has been inserted (and survived — the
// envelope is never empty after a successful Insert).  Querying an empty
// envelope panics with ErrEmptyEnvelope.
//
// Complexity: O(log n).
func (e *Envelope[T]) Query(x T) T {
	if e.bySlope.Len() == 0 {
		panic(ErrEmptyEnvelope)
	}

	// The active line at x is the one with the smallest breakpoint ≥ x.
	// The probe pivot sorts before any real node with that exact coordinate,
	// and the rightmost line's +∞ breakpoint guarantees a hit.
	pivot := &node[T]{bp: Breakpoint[T]{kind: bpFinite, x: x}, probe: true}
	var hit *node[T]
	e.byBreak.AscendGreaterOrEqual(pivot, func(n *node[T]) bool {
		hit = n

		return false
	})

	return hit.slope*x + hit.intercept
}

// Len returns the number of lines currently on the envelope.
func (e *Envelope[T]) Len() int { return e.bySlope.Len() }

// Removed returns the total number of lines evicted by dominance cleanup
// since the envelope was created.  Each line is evicted at most once after
// entering, so across any sequence the total never exceeds the number of
// Insert calls (a duplicate of a previously evicted line enters — and may be
// evicted — again; only duplicates of a currently live line are blocked).
func (e *Envelope[T]) Removed() int { return e.removed }

// Lines returns the surviving lines in ascending slope order.
func (e *Envelope[T]) Lines() []Line[T] {
	out := make([]Line[T], 0, e.bySlope.Len())
	e.bySlope.Ascend(func(n *node[T]) bool {
		out = append(out, Line[T]{Slope: n.slope, Intercept: n.intercept})

		return true
	})

	return out
}

// Breakpoints returns the breakpoints of the surviving lines, in the same
// ascending slope order as Lines.  After any Insert returns, the sequence is
// strictly ascending and ends with the +∞ sentinel of the steepest line.
func (e *Envelope[T]) Breakpoints() []Breakpoint[T] {
	out := make([]Breakpoint[T], 0, e.bySlope.Len())
	e.bySlope.Ascend(func(n *node[T]) bool {
		out = append(out, n.bp)

		return true
	})

	return out
}

// intersect recomputes left's breakpoint against right and reports whether
// right is now entirely dominated (its validity window swallowed by left's).
//
//   - right == nil (end of set): left is never superseded; breakpoint +∞.
//   - equal slopes: the larger intercept wins for every x; the breakpoint is
//     +∞ when left wins, −∞ (never the maximum) when right wins.  Duplicate
//     slopes thus flow through the same machinery as real intersections.
//   - otherwise: the crossing x* = (m_right − m_left) / (k_left − k_right),
//     floored in the integer domain.
//
// "Remove right" is reported when left's new breakpoint reaches at or past
// right's: left stays the maximum beyond the whole range right claimed.
func (e *Envelope[T]) intersect(left, right *node[T]) bool {
	var bp Breakpoint[T]
	switch {
	case right == nil:
		bp = Breakpoint[T]{kind: bpPosInf}
	case left.slope == right.slope:
		if left.intercept > right.intercept {
			bp = Breakpoint[T]{kind: bpPosInf}
		} else {
			bp = Breakpoint[T]{kind: bpNegInf}
		}
	default:
		bp = Breakpoint[T]{
			kind: bpFinite,
			x:    e.div(right.intercept-left.intercept, left.slope-right.slope),
		}
	}
	e.setBreak(left, bp)

	if right == nil {
		return false
	}

	return !bp.less(right.bp) // left.bp ≥ right.bp
}

// setBreak updates a node's breakpoint and keeps the byBreak index honest:
// the entry is deleted under the old key before the field changes and
// reinserted under the new one.  Mutating the key of an indexed node in
// place would corrupt the tree.
func (e *Envelope[T]) setBreak(n *node[T], bp Breakpoint[T]) {
	if n.indexed {
		e.byBreak.Delete(n)
	}
	n.bp = bp
	e.byBreak.ReplaceOrInsert(n)
	n.indexed = true
}

// remove evicts a line from both indexes and counts the eviction.
func (e *Envelope[T]) remove(n *node[T]) {
	e.bySlope.Delete(n)
	if n.indexed {
		e.byBreak.Delete(n)
		n.indexed = false
	}
	e.removed++
}

// succ returns the strict successor of n in slope order, or nil at the end
// of the set.  n must be present in bySlope.
func (e *Envelope[T]) succ(n *node[T]) *node[T] {
	var s *node[T]
	e.bySlope.AscendGreaterOrEqual(n, func(it *node[T]) bool {
		if it == n {
			return true // skip n itself
		}
		s = it

		return false
	})

	return s
}

// pred returns the strict predecessor of n in slope order, or nil at the
// start of the set.  n must be present in bySlope.
func (e *Envelope[T]) pred(n *node[T]) *node[T] {
	var p *node[T]
	e.bySlope.DescendLessOrEqual(n, func(it *node[T]) bool {
		if it == n {
			return true // skip n itself
		}
		p = it

		return false
	})

	return p
}
