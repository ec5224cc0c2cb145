// Package envelope maintains the upper envelope of a dynamic set of lines
// y = k·x + m and answers maximum-value queries at any x — the classical
// "Convex Hull Trick" structure, accepting insertions in arbitrary slope order.
//
// 🚀 What is an upper envelope?
//
//	The pointwise maximum of a set of linear functions is itself a
//	piecewise-linear convex function.  Only the lines that touch that
//	maximum somewhere survive; every other line is dominated and can be
//	discarded.  The structure keeps exactly the survivors, ordered by
//	slope, together with the breakpoint where each one hands over to its
//	right neighbor.  It is a workhorse of dynamic-programming speedups:
//	  • DP transitions of the form dp[i] = max_j (k_j·x_i + m_j)
//	  • Aggregating rectangle areas over candidate widths
//	  • Counting visible segments under projection
//
// ✨ Key features:
//   - Insert lines in any order — no pre-sorting by slope required
//   - Amortized O(log n) Insert, O(log n) Query
//   - Integer domain with floored-division breakpoints (NewInteger) or
//     real domain with exact division (NewReal), fixed per instance
//   - Tagged ±∞ breakpoints — no sentinel collisions with real values
//   - Lower envelope (minimum) via MinEnvelope, negation handled for you
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlhull/envelope"
//
//	e := envelope.NewInteger[int64]()
//	e.Insert(1, 0)   // y = x
//	e.Insert(-1, 0)  // y = -x
//	e.Insert(0, 5)   // y = 5
//
//	best := e.Query(10) // 10, from y = x
//
// Complexity:
//
//   - Insert: O(log n) amortized; a single call may evict many newly
//     dominated lines, but each line is evicted at most once over the
//     structure's lifetime, so total repair work across n inserts is O(n).
//   - Query:  O(log n)
//   - Space:  O(n) over surviving lines
//
// Errors & preconditions:
//
//   - Query on an empty envelope panics with ErrEmptyEnvelope — there is no
//     semantically correct answer, so this fails loudly rather than
//     returning a sentinel.
//   - WithDegree panics with ErrBadDegree for degrees below 2.
//
// Concurrency:
//
//	An Envelope is NOT safe for concurrent use.  Insert rewrites the
//	breakpoints of neighboring lines in place, and those same breakpoints
//	are the search keys Query navigates; interleaving the two without
//	external locking is undefined.  Independent instances share nothing.
//
// See examples in example_test.go and the worked scenarios under examples/.
package envelope
