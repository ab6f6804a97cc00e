package partition

// SolveNaive evaluates the recurrence directly over every segment start.
// It has no ordering contract on the elements, so it accepts negative and
// zero values, and serves as the reference for Solve.
//
// On ties the earliest segment start wins.
//
// Complexity: O(n²) time, O(n) memory.
func SolveNaive(seq []int64, cost Cost, opts Options) (Result, error) {
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	var (
		n    = len(seq)
		ps   = PrefixSums(seq)
		eff  = orient(cost, opts.Objective)
		dp   = make([]int64, n+1)
		from = make([]int, n+1)
	)
	var (
		i, j int
		v    int64
	)
	for i = 1; i <= n; i++ {
		from[i] = 1
		dp[i] = eff.Eval(ps[i])
		for j = 2; j <= i; j++ {
			v = dp[j-1] + eff.Eval(ps[i]-ps[j-1])
			if v > dp[i] {
				dp[i] = v
				from[i] = j
			}
		}
	}

	return finish(ps, dp, from, cost, opts), nil
}
