package hull

import "sort"

// QueryMax returns the identifier of the line with the largest value at x,
// using the configured QueryMode. On ties the later-inserted line wins.
//
// Errors: ErrEmpty if the stack was emptied through Pop.
//
// Complexity: O(log k) BinarySearch; O(1) amortized MonotonePointer for
// non-decreasing x.
func (e *Envelope) QueryMax(x int64) (int, error) {
	if e.opts.queryMode == MonotonePointer {
		return e.QueryPointer(x)
	}

	return e.QueryBinary(x)
}

// QueryBinary returns the ID of the rightmost entry whose Boundary <= x.
// The bottom entry answers when no boundary qualifies.
func (e *Envelope) QueryBinary(x int64) (int, error) {
	if len(e.entries) == 0 {
		return 0, ErrEmpty
	}
	e.stats.Queries++

	// First index whose boundary is strictly greater than x.
	idx := sort.Search(len(e.entries), func(p int) bool {
		return e.entries[p].Boundary.CmpInt(x) > 0
	})
	if idx > 0 {
		idx--
	}

	return e.entries[idx].ID, nil
}

// QueryPointer answers like QueryBinary but walks a cursor kept between calls.
// The cursor is clamped after pops, moved down while its boundary exceeds x,
// then moved up while the next boundary is still <= x.
func (e *Envelope) QueryPointer(x int64) (int, error) {
	if len(e.entries) == 0 {
		return 0, ErrEmpty
	}
	e.stats.Queries++

	last := len(e.entries) - 1
	if e.cursor > last {
		e.cursor = last
	}
	for e.cursor > 0 && e.entries[e.cursor].Boundary.CmpInt(x) > 0 {
		e.cursor--
	}
	for e.cursor < last && e.entries[e.cursor+1].Boundary.CmpInt(x) <= 0 {
		e.cursor++
	}

	return e.entries[e.cursor].ID, nil
}
