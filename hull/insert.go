package hull

import (
	"fmt"

	"github.com/katalvlaran/lvpart/fraction"
)

// Insert adds line id to the envelope, first popping every top line that the
// new line dominates on that line's whole range.
//
// Algorithm:
//  1. cur := top of the stack. An empty stack receives (id, −∞).
//  2. If slope(id) < slope(cur): ErrSlopeOrder.
//  3. If slope(id) == slope(cur): apply the EqualSlopePolicy
//     (RejectEqualSlopes → ErrEqualSlopes; KeepBetterIntercept → pop cur when
//     intercept(id) >= intercept(cur), otherwise drop id).
//  4. x := (intercept(cur) − intercept(id)) / (slope(id) − slope(cur)), exact.
//  5. If x <= cur.Boundary, cur is never strictly maximal any more: pop, go to 1.
//  6. Otherwise push (id, x): id is maximal for every x' >= x.
//
// Popping on equality keeps boundaries strictly increasing; the popped line
// only tied the new one at that single point.
//
// Complexity: O(1) amortized; each line is popped at most once.
func (e *Envelope) Insert(id int) error {
	var (
		newSlope = e.lines.Slope(id)
		newIcpt  = e.lines.Intercept(id)
	)

	for {
		cur, ok := e.Top()
		if !ok {
			e.entries = append(e.entries, Entry{ID: id, Boundary: fraction.NegInf()})
			e.stats.Pushes++
			e.stats.Inserts++

			return nil
		}

		curSlope := e.lines.Slope(cur.ID)
		curIcpt := e.lines.Intercept(cur.ID)

		if newSlope < curSlope {
			return fmt.Errorf("%w: line %d (slope %d) after line %d (slope %d)",
				ErrSlopeOrder, id, newSlope, cur.ID, curSlope)
		}

		if newSlope == curSlope {
			if e.opts.equalSlopes == RejectEqualSlopes {
				_, err := fraction.New(curIcpt-newIcpt, newSlope-curSlope)

				return fmt.Errorf("%w: lines %d and %d (slope %d): %w",
					ErrEqualSlopes, cur.ID, id, newSlope, err)
			}
			if newIcpt < curIcpt {
				e.stats.Discarded++

				return nil
			}
			e.Pop()

			continue
		}

		x, err := fraction.New(curIcpt-newIcpt, newSlope-curSlope)
		if err != nil {
			return fmt.Errorf("hull: intersect lines %d and %d: %w", cur.ID, id, err)
		}

		if x.Cmp(cur.Boundary) <= 0 {
			e.Pop()

			continue
		}

		e.entries = append(e.entries, Entry{ID: id, Boundary: x})
		e.stats.Pushes++
		e.stats.Inserts++

		return nil
	}
}
