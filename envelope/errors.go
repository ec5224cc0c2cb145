package envelope

import "errors"

var (
	// ErrEmptyEnvelope indicates Query was called on an envelope holding no
	// lines.  This is a programmer error: Query panics with this sentinel
	// instead of returning a made-up value.
	ErrEmptyEnvelope = errors.New("envelope: query on empty envelope")

	// ErrBadDegree indicates WithDegree was given a B-tree degree below 2,
	// which cannot form a valid tree node.
	ErrBadDegree = errors.New("envelope: B-tree degree must be at least 2")
)
