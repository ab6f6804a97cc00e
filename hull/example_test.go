package hull_test

import (
	"fmt"

	"github.com/katalvlaran/lvpart/hull"
)

// slopes and intercepts of four lines, indexed by id.
type demoLines [][2]int64

func (d demoLines) Slope(id int) int64     { return d[id][0] }
func (d demoLines) Intercept(id int) int64 { return d[id][1] }

// ExampleEnvelope_Insert builds an envelope and shows which line wins where.
func ExampleEnvelope_Insert() {
	lines := demoLines{
		{0, 0},   // y = 0
		{1, -2},  // y = x - 2
		{2, -6},  // y = 2x - 6
		{3, -20}, // y = 3x - 20
	}
	env, err := hull.New(0, lines)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for id := 1; id < len(lines); id++ {
		if err = env.Insert(id); err != nil {
			fmt.Println("error:", err)

			return
		}
	}
	for _, e := range env.Entries() {
		fmt.Printf("line %d from x=%v\n", e.ID, e.Boundary)
	}
	for _, x := range []int64{-5, 3, 4, 20} {
		id, _ := env.QueryMax(x)
		fmt.Printf("x=%d -> line %d\n", x, id)
	}
	// Output:
	// line 0 from x=-inf
	// line 1 from x=2
	// line 2 from x=4
	// line 3 from x=14
	// x=-5 -> line 0
	// x=3 -> line 1
	// x=4 -> line 2
	// x=20 -> line 3
}
