// Package envelope defines the numeric domains, public value types and
// configuration options for the upper-envelope structure.
//
// Numeric domains:
//
//	– Integer — fixed-width signed integers; breakpoints are computed with
//	   floored division (rounding toward −∞, not toward zero), because the
//	   envelope ordering depends on a consistent rounding direction.
//	– Float   — IEEE floating point; breakpoints use exact division.
//
// The domain is fixed per instance by the constructor (NewInteger, NewReal)
// and cannot change afterwards: the intersection arithmetic and the infinity
// handling differ between the two.
//
// Options:
//
//	– Degree: branching degree of the two backing B-trees (slope index and
//	   breakpoint index).  Must be ≥ 2; defaults to DefaultDegree.
package envelope

// Integer is the set of signed integer types accepted by NewInteger.
// Unsigned types are excluded: slopes and intercepts are signed quantities,
// and the minimum variant negates them.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the set of floating-point types accepted by NewReal.
type Float interface {
	~float32 | ~float64
}

// Number is the union of all numeric domains an Envelope can carry.
type Number interface {
	Integer | Float
}

// Line is a read-only snapshot of one surviving line y = Slope·x + Intercept.
// Slope and Intercept never change after insertion; what changes over the
// structure's lifetime is only whether the line is still on the envelope.
type Line[T Number] struct {
	Slope     T // k
	Intercept T // m
}

// Eval returns the line's value at x.
func (l Line[T]) Eval(x T) T { return l.Slope*x + l.Intercept }

// bpKind tags a Breakpoint as −∞, finite, or +∞.  The numeric order of the
// constants is the comparison order: bpNegInf < bpFinite < bpPosInf.
type bpKind uint8

const (
	bpNegInf bpKind = iota // never the maximum; eligible for removal
	bpFinite               // real computed intersection
	bpPosInf               // never superseded (rightmost line)
)

// Breakpoint is the x-coordinate of the rightmost point for which a line is
// still part of the upper envelope.  It is a tagged value rather than a raw
// number so that ±∞ never collides with a legitimately computed coordinate,
// even in the integer domain where the type has no infinity of its own.
//
// A Breakpoint is derived metadata: it changes as neighboring lines are
// inserted or evicted, even though the line itself is immutable.
type Breakpoint[T Number] struct {
	kind bpKind
	x    T // meaningful only when kind == bpFinite
}

// Finite reports whether the breakpoint is a real coordinate (use X to read it).
func (b Breakpoint[T]) Finite() bool { return b.kind == bpFinite }

// PosInf reports whether the line is never superseded to the right.
func (b Breakpoint[T]) PosInf() bool { return b.kind == bpPosInf }

// NegInf reports whether the line is never the maximum anywhere.
func (b Breakpoint[T]) NegInf() bool { return b.kind == bpNegInf }

// X returns the finite coordinate.  The zero value of T is returned for the
// infinite kinds; check Finite first.
func (b Breakpoint[T]) X() T { return b.x }

// less orders breakpoints: −∞ < any finite coordinate < +∞, finite
// coordinates by value.  Two infinities of the same sign are equal.
func (b Breakpoint[T]) less(o Breakpoint[T]) bool {
	if b.kind != o.kind {
		return b.kind < o.kind
	}

	return b.kind == bpFinite && b.x < o.x
}

// DefaultDegree is the B-tree branching degree used when WithDegree is not given.
const DefaultDegree = 16

// Options configures an Envelope.
//
// Degree – branching degree of the backing B-trees.  Must be ≥ 2.
type Options struct {
	Degree int // B-tree degree for both the slope and the breakpoint index
}

// Option represents a functional option for configuring an Envelope.
type Option func(*Options)

// WithDegree sets the branching degree of the two backing B-trees.
// Must pass a degree ≥ 2; smaller values panic with the ErrBadDegree
// sentinel, the same payload shape Query uses for its precondition.
// Default (if not set) is DefaultDegree.
func WithDegree(degree int) Option {
	return func(o *Options) {
		if degree < 2 {
			// Panic to signal invalid configuration early, before any line
			// has been inserted into a malformed tree.
			panic(ErrBadDegree)
		}
		o.Degree = degree
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults.  Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - Degree: DefaultDegree.
func DefaultOptions() Options {
	return Options{
		Degree: DefaultDegree,
	}
}
