package envelope

// MinEnvelope maintains the lower envelope of lines and answers
// Query(x) = min over all inserted lines of k·x + m.
//
// It is the negation transform over an upper envelope: each inserted line is
// stored as (−k, −m) and query results are negated back, so
// min(k·x + m) == −max(−k·x − m).  The transform is validated by the same
// property suite as the upper envelope, not assumed by symmetry (see
// minenvelope_test.go).
//
// All preconditions and concurrency caveats of Envelope apply unchanged.
// In fixed-width integer domains the caller must keep slopes and intercepts
// strictly above the type's minimum value, which has no negation.
type MinEnvelope[T Number] struct {
	upper *Envelope[T]
}

// NewIntegerMin returns an empty lower envelope over a signed integer domain.
func NewIntegerMin[T Integer](opts ...Option) *MinEnvelope[T] {
	return &MinEnvelope[T]{upper: NewInteger[T](opts...)}
}

// NewRealMin returns an empty lower envelope over a floating-point domain.
func NewRealMin[T Float](opts ...Option) *MinEnvelope[T] {
	return &MinEnvelope[T]{upper: NewReal[T](opts...)}
}

// Insert adds the line y = k·x + m.  Amortized O(log n).
func (e *MinEnvelope[T]) Insert(k, m T) { e.upper.Insert(-k, -m) }

// Query returns min over all inserted lines of k·x + m.  O(log n).
// Panics with ErrEmptyEnvelope when no line has been inserted.
func (e *MinEnvelope[T]) Query(x T) T { return -e.upper.Query(x) }

// Len returns the number of lines currently on the lower envelope.
func (e *MinEnvelope[T]) Len() int { return e.upper.Len() }

// Removed returns the total number of lines evicted by dominance cleanup.
func (e *MinEnvelope[T]) Removed() int { return e.upper.Removed() }

// Lines returns the surviving lines in ascending slope order of the
// underlying upper envelope, translated back to the caller's coordinates —
// i.e. in descending order of the slopes the caller inserted.
func (e *MinEnvelope[T]) Lines() []Line[T] {
	out := e.upper.Lines()
	for i := range out {
		out[i].Slope = -out[i].Slope
		out[i].Intercept = -out[i].Intercept
	}

	return out
}

// Breakpoints returns the hand-over x-coordinates of the surviving lines, in
// the same order as Lines.  Negating a pair of lines does not move their
// crossing, so the coordinates need no translation: after any Insert the
// sequence is strictly ascending and ends with the +∞ sentinel.
func (e *MinEnvelope[T]) Breakpoints() []Breakpoint[T] {
	return e.upper.Breakpoints()
}
