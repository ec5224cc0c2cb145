// Package lvlhull is an in-memory toolkit for the dynamic upper envelope of
// lines — the "Convex Hull Trick" — with maximum and minimum query variants.
//
// 🚀 What is lvlhull?
//
//	A small, focused library that maintains a collection of linear
//	functions y = k·x + m and answers, for any x, the best value over all
//	of them:
//		• Envelope    — maximum queries (upper envelope)
//		• MinEnvelope — minimum queries (lower envelope, via negation)
//		• Integer domain with floored-division breakpoints, or
//		  floating-point domain with exact arithmetic — fixed per instance
//
// ✨ Why choose lvlhull?
//
//   - Insert in any order – no pre-sorting of slopes required
//   - Amortized O(log n) inserts, O(log n) queries
//   - Tagged ±∞ breakpoints – no sentinel collisions, even over integers
//   - Pure Go – no cgo, a single ordered-container dependency
//
// Everything lives in one subpackage:
//
//	envelope/ — the envelope structures, their options and introspection
//
// Quick ASCII example:
//
//	   \      ____      /
//	    \    /    \    /
//	     \  /      \  /
//	      \/........\/
//
//	the pointwise maximum of the dashed lines is the solid convex chain;
//	only lines touching that chain survive inside the structure.
//
// Dive into envelope/doc.go for the full API walkthrough, and into
// examples/ for two worked scenarios (rectangle-area aggregation and
// visible-line counting).
//
//	go get github.com/katalvlaran/lvlhull/envelope
package lvlhull
