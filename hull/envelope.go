package hull

import (
	"github.com/katalvlaran/lvpart/fraction"
)

// Envelope is the stack of lines that can still be maximal, bottom first.
//
// Invariants (kept by Insert; Push checks the first one):
//   - entries[p].Boundary < entries[p+1].Boundary;
//   - entries[0].Boundary is −∞;
//   - slopes are non-decreasing bottom to top.
//
// An Envelope is not safe for concurrent use.
type Envelope struct {
	entries []Entry
	lines   LineSet
	opts    Options
	cursor  int // MonotonePointer position; re-validated on every query
	stats   Stats
}

// New returns an envelope holding the single sentinel entry (base, −∞).
// base is the identifier of the line that answers every query until a
// better line is inserted.
//
// Errors: ErrNilLines if lines is nil.
//
// Complexity: O(capacity).
func New(base int, lines LineSet, opts ...Option) (*Envelope, error) {
	if lines == nil {
		return nil, ErrNilLines
	}
	o := gatherOptions(opts)

	entries := make([]Entry, 1, max(o.capacity, 1))
	entries[0] = Entry{ID: base, Boundary: fraction.NegInf()}

	return &Envelope{entries: entries, lines: lines, opts: o}, nil
}

// Len returns the number of entries on the stack.
func (e *Envelope) Len() int { return len(e.entries) }

// Top returns the top entry without removing it. ok is false only if the
// stack was emptied through Pop.
func (e *Envelope) Top() (Entry, bool) {
	if len(e.entries) == 0 {
		return Entry{}, false
	}

	return e.entries[len(e.entries)-1], true
}

// Pop removes and returns the top entry.
func (e *Envelope) Pop() (Entry, bool) {
	if len(e.entries) == 0 {
		return Entry{}, false
	}
	last := len(e.entries) - 1
	top := e.entries[last]
	e.entries = e.entries[:last]
	e.stats.Pops++

	return top, true
}

// Push appends (id, boundary) as the new top.
//
// Errors: ErrBoundaryOrder unless boundary is strictly greater than the
// current top boundary. An empty stack accepts any boundary.
//
// Complexity: O(1) amortized.
func (e *Envelope) Push(id int, boundary fraction.Fraction) error {
	if top, ok := e.Top(); ok && boundary.Cmp(top.Boundary) <= 0 {
		return ErrBoundaryOrder
	}
	e.entries = append(e.entries, Entry{ID: id, Boundary: boundary})
	e.stats.Pushes++

	return nil
}

// Entries returns a copy of the stack, bottom first.
func (e *Envelope) Entries() []Entry {
	out := make([]Entry, len(e.entries))
	copy(out, e.entries)

	return out
}

// Stats returns the operation counters.
func (e *Envelope) Stats() Stats { return e.stats }
