package partition

import (
	"fmt"

	"github.com/katalvlaran/lvpart/hull"
)

// Solve computes the optimal partition with the convex hull trick.
//
// Algorithm Outline:
//  1. PS = prefix sums; DP[0] = 0; envelope = {(line 1, −∞)}.
//  2. For i = 1..n:
//     j     = envelope.QueryMax(x(i))
//     DP[i] = slope(j)·x(i) + intercept(j) + d(i)
//     if i < n: envelope.Insert(i+1) (line i+1 depends on DP[i])
//  3. Cost = DP[n]; walk the recorded j's back to recover segments.
//
// Minimize runs the same loop on the negated cost and negates DP back.
//
// Errors:
//   - ErrBadOptions for out-of-range option values.
//   - hull.ErrSlopeOrder when an element is negative.
//   - hull.ErrEqualSlopes when an element is zero under RejectEqualSlopes.
//
// Complexity:
//
//	Time   = O(n log n) BinarySearch, O(n) MonotonePointer
//	Memory = O(n)
func Solve(seq []int64, cost Cost, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	var (
		n   = len(seq)
		tbl = newTable(seq, orient(cost, opts.Objective))
	)
	env, err := hull.New(1, tbl,
		hull.WithQueryMode(opts.QueryMode),
		hull.WithEqualSlopes(opts.EqualSlopes),
		hull.WithCapacity(n+1),
	)
	if err != nil {
		return Result{}, err
	}

	from := make([]int, n+1)
	var (
		i, j int
		x    int64
	)
	for i = 1; i <= n; i++ {
		x = tbl.query(i)
		if j, err = env.QueryMax(x); err != nil {
			return Result{}, fmt.Errorf("partition: step %d: %w", i, err)
		}
		tbl.dp = append(tbl.dp, tbl.Slope(j)*x+tbl.Intercept(j)+tbl.offset(i))
		from[i] = j

		// Line n+1 would start a segment past the end; it is never queried.
		if i == n {
			break
		}
		if err = env.Insert(i + 1); err != nil {
			return Result{}, fmt.Errorf("partition: step %d: %w", i, err)
		}
	}

	res := finish(tbl.ps, tbl.dp, from, cost, opts)
	res.Stats = env.Stats()

	return res, nil
}

// orient returns the cost that the maximizing DP has to run on.
func orient(cost Cost, obj Objective) Cost {
	if obj == Minimize {
		return cost.negate()
	}

	return cost
}

// finish turns the raw DP column into a Result under the caller's objective.
func finish(ps, dp []int64, from []int, cost Cost, opts Options) Result {
	out := make([]int64, len(dp))
	copy(out, dp)
	if opts.Objective == Minimize {
		for k := range out {
			out[k] = -out[k]
		}
	}

	res := Result{Cost: out[len(out)-1], DP: out}
	if opts.ReturnSegments {
		res.Segments = recoverSegments(ps, from, cost)
	}

	return res
}

// recoverSegments walks from[n], from[from[n]-1], … back to the start.
// from[i] = j means the last segment of the best prefix i is elements j..i (1-based).
func recoverSegments(ps []int64, from []int, cost Cost) []Segment {
	segs := make([]Segment, 0)
	for i := len(ps) - 1; i > 0; {
		start := from[i] - 1
		sum := ps[i] - ps[start]
		segs = append(segs, Segment{Start: start, End: i, Sum: sum, Cost: cost.Eval(sum)})
		i = start
	}
	for l, r := 0, len(segs)-1; l < r; l, r = l+1, r-1 {
		segs[l], segs[r] = segs[r], segs[l]
	}

	return segs
}
