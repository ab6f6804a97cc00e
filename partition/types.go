package partition

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpart/hull"
)

var (
	// ErrBadOptions is returned when Options holds an out-of-range enum value.
	ErrBadOptions = errors.New("partition: invalid options")

	// ErrUnknownObjective is returned by ParseObjective for unrecognized names.
	ErrUnknownObjective = errors.New("partition: unknown objective")
)

// Cost is the quadratic segment cost a·s² + b·s + c of a segment with sum s.
type Cost struct {
	A, B, C int64
}

// Eval returns A·sum² + B·sum + C.
func (c Cost) Eval(sum int64) int64 {
	return c.A*sum*sum + c.B*sum + c.C
}

// negate flips the sign of every coefficient.
func (c Cost) negate() Cost {
	return Cost{A: -c.A, B: -c.B, C: -c.C}
}

// Objective selects whether the total cost is maximized or minimized.
type Objective int

const (
	// Maximize the total cost (the classic formulation).
	Maximize Objective = iota

	// Minimize the total cost; solved as Maximize over the negated cost.
	Minimize
)

// String returns "max" or "min".
func (o Objective) String() string {
	switch o {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return fmt.Sprintf("Objective(%d)", int(o))
	}
}

// ParseObjective maps "max"/"maximize" and "min"/"minimize" to an Objective.
func ParseObjective(s string) (Objective, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownObjective, s)
	}
}

// Options configures Solve and SolveNaive.
//
// Fields:
//   - Objective      — Maximize (default) or Minimize.
//   - QueryMode      — envelope query strategy; ignored by SolveNaive.
//   - EqualSlopes    — policy for zero elements (equal consecutive prefix sums);
//     ignored by SolveNaive.
//   - ReturnSegments — if true, Result.Segments holds the optimal partition.
type Options struct {
	Objective      Objective
	QueryMode      hull.QueryMode
	EqualSlopes    hull.EqualSlopePolicy
	ReturnSegments bool
}

// DefaultOptions returns Maximize, BinarySearch, RejectEqualSlopes and
// ReturnSegments=true.
func DefaultOptions() Options {
	return Options{
		Objective:      Maximize,
		QueryMode:      hull.BinarySearch,
		EqualSlopes:    hull.RejectEqualSlopes,
		ReturnSegments: true,
	}
}

// validate rejects enum values outside their declared range.
func (o Options) validate() error {
	switch {
	case o.Objective != Maximize && o.Objective != Minimize:
		return fmt.Errorf("%w: objective %d", ErrBadOptions, int(o.Objective))
	case o.QueryMode != hull.BinarySearch && o.QueryMode != hull.MonotonePointer:
		return fmt.Errorf("%w: query mode %d", ErrBadOptions, int(o.QueryMode))
	case o.EqualSlopes != hull.RejectEqualSlopes && o.EqualSlopes != hull.KeepBetterIntercept:
		return fmt.Errorf("%w: equal-slope policy %d", ErrBadOptions, int(o.EqualSlopes))
	}

	return nil
}

// Segment is one block of the partition: elements [Start, End) (0-based),
// their Sum and the segment Cost under the caller's (un-negated) cost.
type Segment struct {
	Start int   `json:"start" yaml:"start"`
	End   int   `json:"end" yaml:"end"`
	Sum   int64 `json:"sum" yaml:"sum"`
	Cost  int64 `json:"cost" yaml:"cost"`
}

// Result holds the outcome of a solve.
type Result struct {
	// Cost is the optimal total cost DP[n].
	Cost int64

	// DP holds DP[0..n] under the requested objective; DP[0] == 0.
	DP []int64

	// Segments is the optimal partition in order, when ReturnSegments is set.
	Segments []Segment

	// Stats reports envelope activity; zero for SolveNaive.
	Stats hull.Stats
}
