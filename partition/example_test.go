package partition_test

import (
	"fmt"

	"github.com/katalvlaran/lvpart/partition"
)

// ExampleSolve splits troops into units whose strength is a concave function
// of the unit size: cost(s) = -s² + 10s - 20.
func ExampleSolve() {
	seq := []int64{2, 2, 3, 4}
	cost := partition.Cost{A: -1, B: 10, C: -20}

	res, err := partition.Solve(seq, cost, partition.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("cost:", res.Cost)
	for _, s := range res.Segments {
		fmt.Printf("%v sum=%d cost=%d\n", seq[s.Start:s.End], s.Sum, s.Cost)
	}
	// Output:
	// cost: 9
	// [2 2] sum=4 cost=4
	// [3] sum=3 cost=1
	// [4] sum=4 cost=4
}

// ExampleSolve_minimize uses the Minimize objective on a convex cost.
func ExampleSolve_minimize() {
	opts := partition.DefaultOptions()
	opts.Objective = partition.Minimize

	res, err := partition.Solve([]int64{3, 1, 4, 1, 5}, partition.Cost{A: 1, B: -2, C: 3}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.Cost, len(res.Segments))
	// Output:
	// 39 5
}
