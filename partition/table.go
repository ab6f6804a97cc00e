package partition

import "github.com/katalvlaran/lvpart/hull"

// dpTable owns the prefix sums and the growing DP column, and exposes line
// j (a segment starting at element j, 1-based) to the envelope.
type dpTable struct {
	ps   []int64
	dp   []int64
	cost Cost
}

var _ hull.LineSet = (*dpTable)(nil)

func newTable(seq []int64, cost Cost) *dpTable {
	dp := make([]int64, 1, len(seq)+1)

	return &dpTable{ps: PrefixSums(seq), dp: dp, cost: cost}
}

// Slope is PS[j-1].
func (t *dpTable) Slope(j int) int64 {
	return t.ps[j-1]
}

// Intercept is DP[j-1] + a·PS[j-1]² − b·PS[j-1]. DP[j-1] must be known.
func (t *dpTable) Intercept(j int) int64 {
	p := t.ps[j-1]

	return t.dp[j-1] + t.cost.A*p*p - t.cost.B*p
}

// query is the evaluation point x(i) = −2a·PS[i].
func (t *dpTable) query(i int) int64 {
	return -2 * t.cost.A * t.ps[i]
}

// offset is the line-independent term d(i) = a·PS[i]² + b·PS[i] + c.
func (t *dpTable) offset(i int) int64 {
	p := t.ps[i]

	return t.cost.A*p*p + t.cost.B*p + t.cost.C
}
