// Package hull maintains the upper envelope of integer lines y = slope·x + intercept
// that arrive in non-decreasing slope order. It is the data structure behind the
// Convex Hull Trick (CHT).
//
// 🚀 What is the CHT?
//
//	Many DP recurrences have the shape
//	  DP[i] = max_j ( slope(j)·x(i) + intercept(j) ) + d(i)
//	Evaluating every j is O(n) per cell. If lines are inserted with monotone
//	slopes, the set of lines that can ever be maximal forms a stack whose
//	ranges of dominance are consecutive intervals of x. Each insertion pops
//	the lines it dominates (amortized O(1)) and each query is a search over
//	the interval boundaries.
//
// ✨ Key features:
//   - One stack of (line id, boundary) records; the bottom boundary is −∞
//   - Exact boundaries via package fraction: no float rounding, ever
//   - Two interchangeable query strategies:
//     BinarySearch (O(log k)) and MonotonePointer (O(1) amortized when
//     queries are non-decreasing; still correct for any order)
//   - Explicit policy for equal slopes: reject (default) or keep the better intercept
//   - Stats counters for pushes, pops and queries
//
// ⚙️ Usage:
//
//	env, err := hull.New(1, lines, hull.WithQueryMode(hull.MonotonePointer))
//	for i := 1; i <= n; i++ {
//	  j, _ := env.QueryMax(x(i))
//	  ...
//	  if err := env.Insert(i + 1); err != nil {
//	    // ErrSlopeOrder or ErrEqualSlopes
//	  }
//	}
//
// Coefficients are not stored here: the caller owns them behind the LineSet
// interface and the envelope only keeps line identifiers.
//
// Performance:
//
//   - Insert: O(1) amortized (every line is popped at most once)
//   - Query:  O(log k) BinarySearch, O(1) amortized MonotonePointer
//   - Memory: O(k) for k surviving lines
package hull
