// Package lvpart splits an integer sequence into contiguous segments so that
// the total quadratic segment cost is optimal, using the convex hull trick.
//
// 🚀 What is lvpart?
//
//	A segment with sum s costs a·s² + b·s + c. Over all partitions of
//	x_1..x_n into contiguous blocks, lvpart finds the one maximizing (or
//	minimizing) the summed cost. The naive DP is O(n²); lvpart keeps an
//	upper envelope of lines and answers each step with one query:
//		• O(n log n) with binary-search queries
//		• O(n) amortized with the monotone pointer
//
// ✨ Guarantees
//
//   - Exact – envelope boundaries are fractions compared in 128 bits, no floats
//   - Deterministic – ties go to the newest line, identical across query modes
//   - Checked – every result can be cross-validated against the O(n²) DP
//
// Under the hood, everything is organized under three packages:
//
//	fraction/  — exact rational boundaries with a −∞ sentinel
//	hull/      — monotone upper envelope: insert, pop, max-query
//	partition/ — prefix sums, the CHT DP driver, the naive oracle
//
// and the lvpart command (cmd/lvpart) reading the problem from stdin:
//
//	$ printf '4\n-1 10 -20\n2 2 3 4\n' | lvpart
//	9
//
// Quick example:
//
//	res, err := partition.Solve([]int64{2, 2, 3, 4},
//		partition.Cost{A: -1, B: 10, C: -20}, partition.DefaultOptions())
//	// res.Cost == 9, res.Segments == [2 2] [3] [4]
package lvpart
