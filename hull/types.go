package hull

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvpart/fraction"
)

var (
	// ErrNilLines is returned by New when no LineSet is supplied.
	ErrNilLines = errors.New("hull: line set is nil")

	// ErrEmpty is returned by queries on an envelope that was emptied by hand.
	ErrEmpty = errors.New("hull: envelope is empty")

	// ErrBoundaryOrder is returned by Push when the boundary does not exceed the top boundary.
	ErrBoundaryOrder = errors.New("hull: boundary must be strictly greater than the top boundary")

	// ErrSlopeOrder is returned by Insert when a line's slope is below the top line's slope.
	ErrSlopeOrder = errors.New("hull: slopes must be non-decreasing in insertion order")

	// ErrEqualSlopes is returned by Insert under RejectEqualSlopes when two lines are parallel.
	ErrEqualSlopes = errors.New("hull: equal slopes")

	// ErrUnknownQueryMode is returned by ParseQueryMode for unrecognized names.
	ErrUnknownQueryMode = errors.New("hull: unknown query mode")

	// ErrUnknownEqualSlopePolicy is returned by ParseEqualSlopePolicy for unrecognized names.
	ErrUnknownEqualSlopePolicy = errors.New("hull: unknown equal-slope policy")
)

// LineSet exposes the coefficients of the lines referenced by identifier.
// Slope must be non-decreasing over the identifiers passed to Insert.
type LineSet interface {
	Slope(id int) int64
	Intercept(id int) int64
}

// Entry is one record of the envelope stack: line ID is the maximizer for
// every x in [Boundary, next entry's Boundary).
type Entry struct {
	ID       int
	Boundary fraction.Fraction
}

// QueryMode selects how QueryMax locates the maximizing entry.
type QueryMode int

const (
	// BinarySearch finds the rightmost entry with Boundary <= x in O(log k).
	BinarySearch QueryMode = iota

	// MonotonePointer keeps a cursor between calls. It only moves forward while
	// queries are non-decreasing and walks back otherwise, so answers always
	// match BinarySearch.
	MonotonePointer
)

// String returns "binary" or "pointer".
func (m QueryMode) String() string {
	switch m {
	case BinarySearch:
		return "binary"
	case MonotonePointer:
		return "pointer"
	default:
		return fmt.Sprintf("QueryMode(%d)", int(m))
	}
}

// ParseQueryMode maps "binary" or "pointer" (case-insensitive) to a QueryMode.
func ParseQueryMode(s string) (QueryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "binary", "binary-search":
		return BinarySearch, nil
	case "pointer", "monotone", "monotone-pointer":
		return MonotonePointer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownQueryMode, s)
	}
}

// EqualSlopePolicy decides what Insert does with a line parallel to the top line.
type EqualSlopePolicy int

const (
	// RejectEqualSlopes treats parallel lines as a contract violation: the
	// intersection has a zero denominator and Insert returns ErrEqualSlopes.
	RejectEqualSlopes EqualSlopePolicy = iota

	// KeepBetterIntercept keeps whichever parallel line is higher everywhere;
	// on equal intercepts the newer line wins.
	KeepBetterIntercept
)

// String returns "reject" or "keep-better".
func (p EqualSlopePolicy) String() string {
	switch p {
	case RejectEqualSlopes:
		return "reject"
	case KeepBetterIntercept:
		return "keep-better"
	default:
		return fmt.Sprintf("EqualSlopePolicy(%d)", int(p))
	}
}

// ParseEqualSlopePolicy maps "reject" or "keep-better" (case-insensitive) to a policy.
func ParseEqualSlopePolicy(s string) (EqualSlopePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject", "abort":
		return RejectEqualSlopes, nil
	case "keep-better", "keep_better", "keepbetter":
		return KeepBetterIntercept, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownEqualSlopePolicy, s)
	}
}

// Stats counts envelope operations since New.
//
//   - Inserts   — lines pushed by Insert.
//   - Pushes    — entries appended (Insert or Push).
//   - Pops      — entries removed (Insert maintenance or Pop).
//   - Discarded — lines dropped by KeepBetterIntercept without being pushed.
//   - Queries   — calls to QueryMax / QueryBinary / QueryPointer.
type Stats struct {
	Inserts   int
	Pushes    int
	Pops      int
	Discarded int
	Queries   int
}

// ---------- Functional options ----------

const (
	panicQueryModeInvalid   = "hull: WithQueryMode: unknown query mode"
	panicEqualSlopesInvalid = "hull: WithEqualSlopes: unknown equal-slope policy"
)

// Option configures an Envelope. Constructors panic on nonsensical values
// (programmer error); parse user input with ParseQueryMode/ParseEqualSlopePolicy.
type Option func(*Options)

// Options holds the effective envelope configuration.
type Options struct {
	queryMode   QueryMode
	equalSlopes EqualSlopePolicy
	capacity    int
}

// WithQueryMode selects the QueryMax strategy. Default BinarySearch.
func WithQueryMode(m QueryMode) Option {
	if m != BinarySearch && m != MonotonePointer {
		panic(panicQueryModeInvalid)
	}

	return func(o *Options) { o.queryMode = m }
}

// WithEqualSlopes selects the parallel-line policy. Default RejectEqualSlopes.
func WithEqualSlopes(p EqualSlopePolicy) Option {
	if p != RejectEqualSlopes && p != KeepBetterIntercept {
		panic(panicEqualSlopesInvalid)
	}

	return func(o *Options) { o.equalSlopes = p }
}

// WithCapacity preallocates room for n entries. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{queryMode: BinarySearch, equalSlopes: RejectEqualSlopes}
	for _, apply := range opts {
		if apply != nil {
			apply(&o)
		}
	}

	return o
}
