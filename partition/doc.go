// Package partition splits an integer sequence into contiguous segments so
// that the total segment cost is optimal, where a segment with sum s costs
//
//	cost(s) = a·s² + b·s + c.
//
// 🚀 The recurrence
//
//	With prefix sums PS[0] = 0, PS[i] = x_1 + … + x_i:
//	  DP[0] = 0
//	  DP[i] = max_{1≤j≤i} DP[j-1] + cost(PS[i] − PS[j-1])
//	Expanding the square separates the terms that depend on j only, on i
//	only, and on both:
//	  slope(j)     = PS[j-1]
//	  intercept(j) = DP[j-1] + a·PS[j-1]² − b·PS[j-1]
//	  x(i)         = −2a·PS[i]
//	  d(i)         = a·PS[i]² + b·PS[i] + c
//	  DP[i]        = max_j ( slope(j)·x(i) + intercept(j) ) + d(i)
//	so every cell is one query on the upper envelope of lines (package hull).
//
// ✨ Key features:
//   - Solve: O(n log n) (BinarySearch) or O(n) (MonotonePointer)
//   - SolveNaive: the O(n²) recurrence, used as a reference oracle
//   - Maximize (default) or Minimize; minimization negates the cost
//   - Optional recovery of the optimal segments
//
// ⚙️ Usage:
//
//	opts := partition.DefaultOptions()
//	res, err := partition.Solve([]int64{2, 2, 3, 4}, partition.Cost{A: -1, B: 10, C: -20}, opts)
//	// res.Cost == 9
//
// Contract:
//
//	Slopes are the prefix sums, so they must be non-decreasing: every x_i ≥ 0.
//	A zero element makes two consecutive slopes equal; by default that is
//	reported as hull.ErrEqualSlopes, and hull.KeepBetterIntercept handles it.
//	A negative element yields hull.ErrSlopeOrder. All arithmetic is int64:
//	|a|·(max |PS|)² and the DP values must fit.
package partition
